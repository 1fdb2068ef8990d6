package engine

import (
	"testing"

	"dataproc/internal/models"

	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStore(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	records := []models.Record{
		{ID: 1, Value: 10},
		{ID: 2, Value: 20},
		{ID: 3, Value: 30},
		{ID: 4, Value: 40},
	}
	store := NewRecordStore(mem, records)
	defer store.Release()

	require.Equal(t, 4, store.Len())
	assert.Equal(t, 25.0, store.Mean())
	assert.Equal(t, Mean(records), store.Mean())
	assert.Equal(t, records[:3], store.Head(3))
	assert.Equal(t, records, store.Head(10))
	assert.Empty(t, store.Head(0))
}

func TestRecordStoreEmpty(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	store := NewRecordStore(mem, nil)
	defer store.Release()

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 0.0, store.Mean())
	assert.Empty(t, store.Head(3))
}

func TestSummarize(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	summary := Summarize(mem, 1000, 3)

	assert.Equal(t, 1000, summary.Count)
	assert.InDelta(t, 1.5*999/2, summary.Mean, 1e-9)
	assert.Equal(t, []models.Record{
		{ID: 0, Value: 0},
		{ID: 1, Value: 1.5},
		{ID: 2, Value: 3},
	}, summary.Sample)
	assert.GreaterOrEqual(t, int64(summary.Elapsed), int64(0))
}
