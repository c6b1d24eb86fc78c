package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-report/internal/report/model"
)

func report(sheet string) model.Report {
	return model.Report{Sheet: sheet, Rows: []model.Row{}}
}

func TestStore_PutGetDelete(t *testing.T) {
	s := New(10, time.Hour)
	id := s.Put(report("A"))

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Sheet)
	assert.Equal(t, 1, s.Size())

	assert.True(t, s.Delete(id))
	assert.False(t, s.Delete(id))
	_, err = s.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ReplaceKeepsOldOnFailure(t *testing.T) {
	s := New(10, time.Hour)
	id := s.Put(report("old"))

	_, err := s.Replace(id, func() (model.Report, error) {
		return model.Report{}, errors.New("cannot parse")
	})
	require.Error(t, err)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "old", got.Sheet)

	rep, err := s.Replace(id, func() (model.Report, error) { return report("new"), nil })
	require.NoError(t, err)
	assert.Equal(t, "new", rep.Sheet)

	got, err = s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Sheet)
}

func TestStore_ReplaceUnknown(t *testing.T) {
	s := New(10, time.Hour)
	called := false
	_, err := s.Replace("missing", func() (model.Report, error) {
		called = true
		return report("x"), nil
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called)
}

func TestStore_ReplaceAfterConcurrentDelete(t *testing.T) {
	s := New(10, time.Hour)
	id := s.Put(report("old"))

	_, err := s.Replace(id, func() (model.Report, error) {
		s.Delete(id)
		return report("new"), nil
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, s.Size())
}

func TestStore_ReplaceAfterEvictionOrExpiry(t *testing.T) {
	s := New(1, 0)
	id := s.Put(report("old"))
	var other string
	_, err := s.Replace(id, func() (model.Report, error) {
		other = s.Put(report("other"))
		return report("new"), nil
	})
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := s.Get(other)
	require.NoError(t, err)
	assert.Equal(t, "other", got.Sheet)
	assert.Equal(t, 1, s.Size())

	now := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	s = New(10, time.Minute)
	s.now = func() time.Time { return now }
	id = s.Put(report("old"))
	_, err = s.Replace(id, func() (model.Report, error) {
		now = now.Add(2 * time.Minute)
		return report("new"), nil
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, s.Size())
}

func TestStore_LRUEviction(t *testing.T) {
	s := New(2, time.Hour)
	a := s.Put(report("a"))
	b := s.Put(report("b"))

	_, err := s.Get(a) // a становится самым свежим
	require.NoError(t, err)
	c := s.Put(report("c"))

	_, err = s.Get(b)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(a)
	assert.NoError(t, err)
	_, err = s.Get(c)
	assert.NoError(t, err)
	assert.Equal(t, 2, s.Size())
}

func TestStore_TTL(t *testing.T) {
	now := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	s := New(10, time.Minute)
	s.now = func() time.Time { return now }

	a := s.Put(report("a"))
	b := s.Put(report("b"))

	now = now.Add(2 * time.Minute)
	_, err := s.Get(a)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 1, s.CleanExpired())
	assert.Equal(t, 0, s.Size())
	_, err = s.Get(b)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_NoTTL(t *testing.T) {
	s := New(0, 0)
	id := s.Put(report("a"))
	s.now = func() time.Time { return time.Now().Add(1000 * time.Hour) }
	_, err := s.Get(id)
	assert.NoError(t, err)
	assert.Equal(t, 0, s.CleanExpired())
}
