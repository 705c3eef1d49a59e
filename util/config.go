package util

import (
	"time"

	"github.com/spf13/viper"

	"github.com/agrilink/farmwork/algorithm"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment          string        `mapstructure:"ENVIRONMENT"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	MigrationURL         string        `mapstructure:"MIGRATION_URL"`
	RedisAddress         string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword        string        `mapstructure:"REDIS_PASSWORD"`
	HTTPServerAddress    string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSymmetricKey    string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration time.Duration `mapstructure:"REFRESH_TOKEN_DURATION"`

	// 匹配算法参数，缺省值见 algorithm.DefaultMatchConfig
	MatchSkillWeight         float64 `mapstructure:"MATCH_SKILL_WEIGHT"`
	MatchLocationWeight      float64 `mapstructure:"MATCH_LOCATION_WEIGHT"`
	MatchAvailabilityWeight  float64 `mapstructure:"MATCH_AVAILABILITY_WEIGHT"`
	MatchSubstringSimilarity float64 `mapstructure:"MATCH_SUBSTRING_SIMILARITY"`
	MatchMaxRadiusKm         float64 `mapstructure:"MATCH_MAX_RADIUS_KM"`
	MatchUnavailableScore    float64 `mapstructure:"MATCH_UNAVAILABLE_SCORE"`

	// 单次匹配默认返回条数
	MatchDefaultLimit int `mapstructure:"MATCH_DEFAULT_LIMIT"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	defaults := algorithm.DefaultMatchConfig()
	viper.SetDefault("MATCH_SKILL_WEIGHT", defaults.SkillWeight)
	viper.SetDefault("MATCH_LOCATION_WEIGHT", defaults.LocationWeight)
	viper.SetDefault("MATCH_AVAILABILITY_WEIGHT", defaults.AvailabilityWeight)
	viper.SetDefault("MATCH_SUBSTRING_SIMILARITY", defaults.SubstringSimilarity)
	viper.SetDefault("MATCH_MAX_RADIUS_KM", defaults.MaxRadiusKm)
	viper.SetDefault("MATCH_UNAVAILABLE_SCORE", defaults.UnavailableScore)
	viper.SetDefault("MATCH_DEFAULT_LIMIT", 10)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// MatchConfig 把应用配置转换为匹配算法配置
func (c Config) MatchConfig() algorithm.MatchConfig {
	return algorithm.MatchConfig{
		SkillWeight:         c.MatchSkillWeight,
		LocationWeight:      c.MatchLocationWeight,
		AvailabilityWeight:  c.MatchAvailabilityWeight,
		SubstringSimilarity: c.MatchSubstringSimilarity,
		MaxRadiusKm:         c.MatchMaxRadiusKm,
		UnavailableScore:    c.MatchUnavailableScore,
	}
}
