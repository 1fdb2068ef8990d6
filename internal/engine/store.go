package engine

import (
	"time"

	"dataproc/internal/models"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
)

var recordSchema = arrow.NewSchema([]arrow.Field{
	{Name: "id", Type: arrow.PrimitiveTypes.Uint32},
	{Name: "value", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// RecordStore holds records column-wise in an Arrow record batch.
// Callers must Release it when done.
type RecordStore struct {
	batch arrow.Record
}

func NewRecordStore(mem memory.Allocator, records []models.Record) *RecordStore {
	b := array.NewRecordBuilder(mem, recordSchema)
	defer b.Release()

	ids := b.Field(0).(*array.Uint32Builder)
	values := b.Field(1).(*array.Float64Builder)
	ids.Reserve(len(records))
	values.Reserve(len(records))
	for _, r := range records {
		ids.Append(r.ID)
		values.Append(r.Value)
	}

	return &RecordStore{batch: b.NewRecord()}
}

func (s *RecordStore) Len() int {
	return int(s.batch.NumRows())
}

func (s *RecordStore) values() []float64 {
	return s.batch.Column(1).(*array.Float64).Float64Values()
}

// Mean averages the value column. An empty store yields 0.
func (s *RecordStore) Mean() float64 {
	return Avg(s.values())
}

// Head returns up to n records from the front of the store.
func (s *RecordStore) Head(n int) []models.Record {
	if n > s.Len() {
		n = s.Len()
	}
	if n < 0 {
		n = 0
	}
	ids := s.batch.Column(0).(*array.Uint32).Uint32Values()
	values := s.values()

	out := make([]models.Record, n)
	for i := range out {
		out[i] = models.Record{ID: ids[i], Value: values[i]}
	}
	return out
}

func (s *RecordStore) Release() {
	s.batch.Release()
}

// Summarize generates n sample records, loads them into a store and
// reports their mean with the first sampleSize records.
func Summarize(mem memory.Allocator, n, sampleSize int) models.RecordSummary {
	start := time.Now()

	store := NewRecordStore(mem, GenerateRecords(n))
	defer store.Release()

	return models.RecordSummary{
		Count:   store.Len(),
		Mean:    store.Mean(),
		Sample:  store.Head(sampleSize),
		Elapsed: time.Since(start),
	}
}
