package utils

import (
	"math"
	"strings"
)

// UnknownDistance is assigned to hotels without usable coordinates so they
// sort after everything with a real distance.
const UnknownDistance = 9999

// cityCenters maps city names to [longitude, latitude] of a well-known
// central landmark, used as the search base point when the user has not
// shared their location.
var cityCenters = map[string][2]float64{
	"beijing":   {116.4074, 39.9042}, // Tiananmen
	"shanghai":  {121.4737, 31.2304}, // People's Square
	"guangzhou": {113.2644, 23.1291}, // Canton Tower
	"shenzhen":  {114.0579, 22.5431}, // Civic Center
	"hangzhou":  {120.1551, 30.2741}, // West Lake
	"chengdu":   {104.0668, 30.5728}, // Tianfu Square
	"wuhan":     {114.3055, 30.5928}, // Yellow Crane Tower
	"xian":      {108.9398, 34.3416}, // Bell Tower
	"chongqing": {106.5516, 29.5630}, // Jiefangbei
	"nanjing":   {118.7969, 32.0603}, // Xinjiekou
	"tianjin":   {117.2008, 39.0842}, // Tianjin Eye
}

// landmarks maps common destination keywords to coordinates.
var landmarks = map[string][2]float64{
	"forbidden city":     {116.3972, 39.9075},
	"tiananmen":          {116.4074, 39.9042},
	"great wall":         {116.0211, 40.3597}, // Badaling
	"summer palace":      {116.2754, 39.9994},
	"peking university":  {116.3188, 39.9944},
	"tsinghua":           {116.3271, 40.0039},
	"birds nest":         {116.3969, 39.9910},
	"water cube":         {116.3967, 39.9920},
	"bupt":               {116.3595, 39.9632},
}

// Haversine returns the great-circle distance between two points in km.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// ResolveBasePoint picks the reference point for distance sorting, in order
// of preference: the user's own coordinates, a landmark named in the keyword,
// then the searched city's center. Returns longitude, latitude, ok.
func ResolveBasePoint(city, keyword string, latitude, longitude float64) (float64, float64, bool) {
	if latitude != 0 && longitude != 0 {
		return longitude, latitude, true
	}

	if keyword != "" {
		kw := strings.ToLower(strings.TrimSpace(keyword))
		for name, coords := range landmarks {
			if strings.Contains(kw, name) || strings.Contains(name, kw) {
				return coords[0], coords[1], true
			}
		}
	}

	if city != "" {
		ct := strings.ToLower(strings.TrimSpace(city))
		if coords, ok := cityCenters[ct]; ok {
			return coords[0], coords[1], true
		}
		for name, coords := range cityCenters {
			if strings.Contains(ct, name) {
				return coords[0], coords[1], true
			}
		}
	}

	return 0, 0, false
}
