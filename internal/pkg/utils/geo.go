package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseCoordinate разбирает координату, переданную строкой. Допускаются только
// конечные десятичные значения, диапазон не проверяется. Шестнадцатеричная запись
// и разделители "_" отклоняются.
func ParseCoordinate(raw string) (float64, error) {
	if strings.ContainsAny(raw, "_xX") {
		return 0, fmt.Errorf("value %q is not a decimal number", raw)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("value %q is not a finite number", raw)
	}
	return value, nil
}

// FormatDistance форматирует расстояние в кратчайшем десятичном виде без экспоненты
func FormatDistance(distance float64) string {
	return strconv.FormatFloat(distance, 'f', -1, 64)
}
