package engine

import (
	"dataproc/internal/models"

	"golang.org/x/exp/constraints"
)

// Number is any integer or float type.
type Number interface {
	constraints.Float | constraints.Integer
}

// Avg returns the arithmetic mean of data, or 0 if data is empty.
func Avg[T Number](data []T) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += float64(v)
	}
	return sum / float64(len(data))
}

// Mean returns the average Value across records. An empty slice yields exactly 0.
func Mean(records []models.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.Value
	}
	return sum / float64(len(records))
}

// GenerateRecords builds n sample records with id=i and value=i*1.5.
func GenerateRecords(n int) []models.Record {
	if n <= 0 {
		return []models.Record{}
	}
	records := make([]models.Record, n)
	for i := range records {
		records[i] = models.Record{ID: uint32(i), Value: float64(i) * 1.5}
	}
	return records
}
