package algorithm

import (
	"math"
	"strconv"
	"strings"
)

// 地球半径（公里）
const earthRadiusKm = 6371.0

// ParseCoordinate 尝试把位置字符串解析为经纬度坐标
// 只有形如 "lat,lon" 且两个数值都在合法区间内才算坐标，
// 其余情况（多段、非数值、超出区间）一律按普通文本处理，不报错
func ParseCoordinate(location string) (Coordinate, bool) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return Coordinate{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, false
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinate{}, false
	}

	return Coordinate{Latitude: lat, Longitude: lon}, true
}

// HaversineKm 计算两点间的球面距离（公里）
// 使用 Haversine 公式
func HaversineKm(a, b Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	deltaLat := toRadians(b.Latitude - a.Latitude)
	deltaLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// proximityScore 把距离映射为相似度（0-1）
// 线性衰减：0km = 1.0，maxRadiusKm 及以上 = 0.0
func proximityScore(distanceKm, maxRadiusKm float64) float64 {
	if maxRadiusKm <= 0 {
		return 0
	}
	if distanceKm <= 0 {
		return 1
	}
	if distanceKm >= maxRadiusKm {
		return 0
	}
	return 1 - distanceKm/maxRadiusKm
}

// toRadians 角度转弧度
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
