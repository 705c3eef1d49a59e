package algorithm

import "strings"

// normalizeText 文本归一化：小写并去掉首尾空白
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// tokenize 按非字母数字字符切分为词元集合（已归一化、去重）
func tokenize(s string) map[string]struct{} {
	fields := strings.FieldsFunc(normalizeText(s), func(r rune) bool {
		return !isAlphanumeric(r)
	})

	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// jaccard 词元集合的 Jaccard 相似度：|交集| / |并集|
// 并集为空（两边都没有词元）时定义为 0，避免除零
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// SkillTokens 把逗号分隔的技能字符串拆成归一化技能词元集合
// 空白项丢弃，重复项按集合语义只算一次
func SkillTokens(skills string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, s := range strings.Split(skills, ",") {
		s = normalizeText(s)
		if s == "" {
			continue
		}
		tokens[s] = struct{}{}
	}
	return tokens
}
