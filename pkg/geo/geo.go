package geo

import (
	"math"
	"time"
)

// Радиус Земли в метрах (сферическое приближение)
const earthRadiusMeters = 6371000.0

// Coordinate - географическая координата (WGS 84)
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceMeters возвращает расстояние большого круга между двумя точками
// по формуле гаверсинусов. Точность <0.5% на городских масштабах.
// NaN на входе дает NaN на выходе, валидация - на вызывающей стороне.
func DistanceMeters(a, b Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// BearingDegrees возвращает начальный азимут от точки a к точке b в диапазоне [0, 360)
func BearingDegrees(a, b Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	bearing := toDegrees(math.Atan2(y, x))
	return math.Mod(bearing+360, 360)
}

// SpeedMps возвращает среднюю скорость движения между двумя точками в м/с.
// Если моменты времени совпадают или идут в обратном порядке, возвращает 0.
func SpeedMps(a, b Coordinate, from, to time.Time) float64 {
	dt := to.Sub(from).Seconds()
	if dt <= 0 {
		return 0
	}
	return DistanceMeters(a, b) / dt
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
