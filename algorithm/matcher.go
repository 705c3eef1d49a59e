package algorithm

import (
	"context"
	"sort"
)

// Matcher 匹配算法接口
// 便于后期升级算法实现
type Matcher interface {
	// MatchWorkers 为岗位排序候选零工
	// 返回按匹配分降序的结果，最多 topN 条
	MatchWorkers(ctx context.Context, job MatchJob, candidates []MatchWorker, topN int) ([]MatchResult, error)

	// MatchJobs 为零工排序候选岗位
	MatchJobs(ctx context.Context, worker MatchWorker, candidates []MatchJob, topN int) ([]MatchResult, error)

	// Name 返回算法名称
	Name() string

	// Version 返回算法版本
	Version() string
}

// SimpleMatcher V1 匹配算法
// 无状态、不做任何 I/O，可被多个调用方并发使用
type SimpleMatcher struct {
	scorer *ScoreCalculator
}

// NewSimpleMatcher 创建简单匹配算法实例
func NewSimpleMatcher(config MatchConfig) *SimpleMatcher {
	return &SimpleMatcher{scorer: NewScoreCalculator(config)}
}

func (m *SimpleMatcher) Name() string {
	return "SimpleMatcher"
}

func (m *SimpleMatcher) Version() string {
	return "1.0.0"
}

// MatchWorkers 为岗位排序候选零工
func (m *SimpleMatcher) MatchWorkers(ctx context.Context, job MatchJob, candidates []MatchWorker, topN int) ([]MatchResult, error) {
	results := make([]MatchResult, 0, len(candidates))
	if topN <= 0 {
		return results, nil
	}

	for _, worker := range candidates {
		results = append(results, m.scorer.ScoreWorker(job, worker))
	}

	return rank(results, topN), nil
}

// MatchJobs 为零工排序候选岗位
func (m *SimpleMatcher) MatchJobs(ctx context.Context, worker MatchWorker, candidates []MatchJob, topN int) ([]MatchResult, error) {
	results := make([]MatchResult, 0, len(candidates))
	if topN <= 0 {
		return results, nil
	}

	for _, job := range candidates {
		results = append(results, m.scorer.ScoreJob(worker, job))
	}

	return rank(results, topN), nil
}

// rank 按总分降序排序并截取 Top N
// 同分保持候选的原始顺序，保证结果可复现
func rank(results []MatchResult, topN int) []MatchResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}

// 确保实现了接口
var _ Matcher = (*SimpleMatcher)(nil)
