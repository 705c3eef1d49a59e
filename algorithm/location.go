package algorithm

import (
	"fmt"
	"strings"
)

// LocationMatcher 位置相似度匹配器
// 两边都能解析为坐标时走球面距离，否则退回文本相似度
type LocationMatcher struct {
	config MatchConfig
}

// NewLocationMatcher 创建位置匹配器
func NewLocationMatcher(config MatchConfig) *LocationMatcher {
	return &LocationMatcher{config: config}
}

// Similarity 计算两个位置字符串的相似度（0-1）
func (m *LocationMatcher) Similarity(locA, locB string) float64 {
	similarity, _ := m.similarityDetail(locA, locB)
	return similarity
}

// similarityDetail 返回相似度和用于解释的依据描述
func (m *LocationMatcher) similarityDetail(locA, locB string) (float64, string) {
	// 空位置无从比较
	if normalizeText(locA) == "" || normalizeText(locB) == "" {
		return 0, "location missing"
	}

	// 坐标路径：仅当两边都是合法坐标
	coordA, okA := ParseCoordinate(locA)
	coordB, okB := ParseCoordinate(locB)
	if okA && okB {
		distance := HaversineKm(coordA, coordB)
		similarity := proximityScore(distance, m.config.MaxRadiusKm)
		return similarity, fmt.Sprintf("distance %.1fkm, proximity %.2f", distance, similarity)
	}

	// 文本路径：归一化后精确匹配 > 包含 > 词元重合
	normA := normalizeText(locA)
	normB := normalizeText(locB)
	if normA == normB {
		return 1, "location exact match"
	}
	if strings.Contains(normA, normB) || strings.Contains(normB, normA) {
		return m.config.SubstringSimilarity,
			fmt.Sprintf("location substring match %.2f", m.config.SubstringSimilarity)
	}

	similarity := jaccard(tokenize(normA), tokenize(normB))
	return similarity, fmt.Sprintf("location text match %.2f", similarity)
}
