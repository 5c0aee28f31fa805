package service

import "math"

const (
	earthRadiusMeters  = 6371000.0
	metersPerDegreeLat = 111320.0
)

// haversineMeters вычисляет расстояние по большому кругу между двумя точками
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// boundingBox - прямоугольник в градусах, охватывающий коридор маршрута
type boundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// corridorBoundingBox строит рамку вокруг отрезка с буфером в градусах,
// рассчитанным из радиуса в метрах
func corridorBoundingBox(lat1, lon1, lat2, lon2, radiusMeters float64) boundingBox {
	latBuffer := radiusMeters / metersPerDegreeLat

	midLat := (lat1 + lat2) / 2
	cosMid := math.Cos(midLat * math.Pi / 180)
	// Вблизи полюсов долготный буфер вырождается
	if cosMid < 0.01 {
		cosMid = 0.01
	}
	lonBuffer := radiusMeters / (metersPerDegreeLat * cosMid)

	return boundingBox{
		MinLat: math.Min(lat1, lat2) - latBuffer,
		MaxLat: math.Max(lat1, lat2) + latBuffer,
		MinLon: math.Min(lon1, lon2) - lonBuffer,
		MaxLon: math.Max(lon1, lon2) + lonBuffer,
	}
}

// validCoordinates проверяет диапазоны широты и долготы
func validCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
