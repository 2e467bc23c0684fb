package domain

import "math"

// Match - ближайшая найденная точка и расстояние до неё
type Match struct {
	Distance float64
	Point    ServicePoint
}

// Closest выбирает точку с минимальным расстоянием до target линейным проходом.
//
// Возвращает false только для пустого списка. При равных расстояниях побеждает
// точка, встретившаяся раньше.
func Closest(target GeoLocation, points []ServicePoint) (Match, bool) {
	if len(points) == 0 {
		return Match{}, false
	}

	best := Match{
		Distance: DistanceBetween(target, points[0].Address.Geocode),
		Point:    points[0],
	}
	for _, p := range points[1:] {
		d := DistanceBetween(target, p.Address.Geocode)
		if distanceLess(d, best.Distance) {
			best = Match{Distance: d, Point: p}
		}
	}

	return best, true
}

// distanceLess - строгий порядок для сравнения расстояний. NaN никогда не меньше
// другого значения, а любое сравнимое значение меньше NaN.
func distanceLess(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a < b
}
