package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-sim/internal/pipeline"
)

func TestResultStore_PutGet(t *testing.T) {
	s := New(time.Minute)
	report := &pipeline.Report{HorizonDays: 90}

	id := s.Put(report)
	require.NotEmpty(t, id)
	assert.Len(t, id, 12)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Same(t, report, got)
}

func TestResultStore_UniqueIDs(t *testing.T) {
	s := New(time.Minute)
	a := s.Put(&pipeline.Report{})
	b := s.Put(&pipeline.Report{})
	assert.NotEqual(t, a, b)
}

func TestResultStore_MissingID(t *testing.T) {
	s := New(time.Minute)
	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestResultStore_Expiry(t *testing.T) {
	s := New(time.Nanosecond)
	id := s.Put(&pipeline.Report{})
	time.Sleep(time.Millisecond)
	_, ok := s.Get(id)
	assert.False(t, ok)
}
