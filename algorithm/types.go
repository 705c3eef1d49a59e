// Package algorithm 提供岗位与零工的匹配打分算法
// 该包独立于业务逻辑和存储层，便于测试和升级
package algorithm

// Coordinate 经纬度坐标
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MatchJob 参与匹配的岗位信息
type MatchJob struct {
	JobID         int64  `json:"job_id"`
	Title         string `json:"title"`
	SkillRequired string `json:"skill_required"` // 逗号分隔的技能要求
	Location      string `json:"location"`       // 自由文本或 "lat,lon"
}

// MatchWorker 参与匹配的零工信息
type MatchWorker struct {
	WorkerID  int64  `json:"worker_id"`
	Name      string `json:"name"`
	Skills    string `json:"skills"` // 逗号分隔的技能列表
	Location  string `json:"location"`
	Available bool   `json:"available"`
}

// MatchResult 单个候选的匹配结果
type MatchResult struct {
	SubjectID   int64  `json:"subject_id"`
	Score       int    `json:"score"` // 总分 0-100
	Explanation string `json:"explanation"`

	// 各维度原始分（0-1），用于审计和调参
	SkillScore        float64 `json:"skill_score"`
	LocationScore     float64 `json:"location_score"`
	AvailabilityScore float64 `json:"availability_score"`
}

// MatchConfig 匹配算法配置
type MatchConfig struct {
	SkillWeight        float64 `json:"skill_weight"`        // 技能权重
	LocationWeight     float64 `json:"location_weight"`     // 位置权重
	AvailabilityWeight float64 `json:"availability_weight"` // 可用性权重

	SubstringSimilarity float64 `json:"substring_similarity"` // 文本包含时的相似度
	MaxRadiusKm         float64 `json:"max_radius_km"`        // 相似度衰减到 0 的距离（公里）
	UnavailableScore    float64 `json:"unavailable_score"`    // 不可用零工的可用性分
}

// DefaultMatchConfig 默认配置
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		SkillWeight:         0.60,
		LocationWeight:      0.30,
		AvailabilityWeight:  0.10,
		SubstringSimilarity: 0.80,
		MaxRadiusKm:         100,
		UnavailableScore:    0.0,
	}
}
