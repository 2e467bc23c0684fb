package domain

import "math"

// GeoLocation - географическая координата точки
type GeoLocation struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// DistanceBetween возвращает евклидово расстояние между точками в плоскости
// (широта, долгота).
//
// Это плоское приближение, а не расстояние по большому кругу: оно годится только
// для небольших областей. Формула сохраняется как есть, потребители зависят от
// точных значений для воспроизводимого порядка.
func DistanceBetween(a, b GeoLocation) float64 {
	dLon := a.Longitude - b.Longitude
	dLat := a.Latitude - b.Latitude
	return math.Sqrt(dLon*dLon + dLat*dLat)
}
