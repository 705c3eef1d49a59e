package algorithm

import (
	"fmt"
	"math"
	"strings"
)

// ScoreCalculator 匹配分计算器
// 按技能、位置、可用性三个维度加权计算 0-100 的匹配分，
// 并生成可审计的解释文本
type ScoreCalculator struct {
	config    MatchConfig
	locations *LocationMatcher
}

// NewScoreCalculator 创建匹配分计算器
func NewScoreCalculator(config MatchConfig) *ScoreCalculator {
	return &ScoreCalculator{
		config:    config,
		locations: NewLocationMatcher(config),
	}
}

// ScoreWorker 计算零工相对岗位的匹配分
func (sc *ScoreCalculator) ScoreWorker(job MatchJob, worker MatchWorker) MatchResult {
	result := sc.score(job, worker)
	result.SubjectID = worker.WorkerID
	return result
}

// ScoreJob 计算岗位相对零工的匹配分
// 打分公式与 ScoreWorker 完全一致，只是结果归属到岗位
func (sc *ScoreCalculator) ScoreJob(worker MatchWorker, job MatchJob) MatchResult {
	result := sc.score(job, worker)
	result.SubjectID = job.JobID
	return result
}

// score 核心打分逻辑，对 (岗位, 零工) 对称
func (sc *ScoreCalculator) score(job MatchJob, worker MatchWorker) MatchResult {
	reasons := make([]string, 0, 3)

	// 技能分：要求技能被满足的比例
	required := SkillTokens(job.SkillRequired)
	owned := SkillTokens(worker.Skills)

	var skillScore float64
	if len(required) == 0 {
		// 没有技能要求等于匹配不到任何技能
		skillScore = 0
		reasons = append(reasons, "no required skills")
	} else {
		matched := 0
		for t := range required {
			if _, ok := owned[t]; ok {
				matched++
			}
		}
		skillScore = float64(matched) / float64(len(required))
		reasons = append(reasons, fmt.Sprintf("skills matched %d/%d", matched, len(required)))
	}

	// 位置分
	locationScore, locationReason := sc.locations.similarityDetail(job.Location, worker.Location)
	reasons = append(reasons, locationReason)

	// 可用性分
	availabilityScore := sc.config.UnavailableScore
	if worker.Available {
		availabilityScore = 1
		reasons = append(reasons, "available: yes")
	} else {
		reasons = append(reasons, "available: no")
	}

	// 加权汇总并收敛到 [0,100]
	total := sc.config.SkillWeight*skillScore +
		sc.config.LocationWeight*locationScore +
		sc.config.AvailabilityWeight*availabilityScore

	score := int(math.Round(total * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return MatchResult{
		Score:             score,
		Explanation:       strings.Join(reasons, "; "),
		SkillScore:        skillScore,
		LocationScore:     locationScore,
		AvailabilityScore: availabilityScore,
	}
}
