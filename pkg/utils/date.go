package utils

import "time"

// YearBounds devolve o intervalo [1º de janeiro, 1º de janeiro do ano seguinte) em UTC
func YearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}
