package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomFloat generates a random float between min and max
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomName generates a random person name
func RandomName() string {
	return RandomString(8)
}

// RandomPhone generates a random 12 digit phone number
func RandomPhone() string {
	return fmt.Sprintf("+250%d", RandomInt(100000000, 999999999))
}

// RandomEmail generates a random email
func RandomEmail() string {
	return fmt.Sprintf("%s@example.com", RandomString(8))
}

// RandomCoordinate 生成卢旺达境内附近的随机 "lat,lon" 位置串
func RandomCoordinate() string {
	return fmt.Sprintf("%.4f,%.4f", RandomFloat(-2.9, -1.0), RandomFloat(28.9, 30.9))
}

// RandomSkills 生成随机的逗号分隔技能列表
func RandomSkills() string {
	pool := []string{"Planting", "Harvesting", "Weeding", "Irrigation", "Pruning", "Data entry", "Surveying"}
	n := int(RandomInt(1, 3))
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		picked = append(picked, pool[rand.Intn(len(pool))])
	}
	return strings.Join(picked, ",")
}
