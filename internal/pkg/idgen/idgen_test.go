package idgen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverExists(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func TestRandom_Format(t *testing.T) {
	g := NewRandom("ATT_", 6, neverExists)

	id, err := g.Next(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "ATT_"))
	assert.Len(t, id, len("ATT_")+6)

	// No confusable characters in the generated part.
	for _, c := range id[len("ATT_"):] {
		assert.Contains(t, alphabet, string(c))
	}
}

func TestRandom_RetriesOnCollision(t *testing.T) {
	calls := 0
	exists := func(ctx context.Context, id string) (bool, error) {
		calls++
		return calls < 3, nil // first two candidates collide
	}

	g := NewRandom("ATT_", 6, exists)
	id, err := g.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, strings.HasPrefix(id, "ATT_"))
}

func TestRandom_FallbackAfterExhaustion(t *testing.T) {
	alwaysTaken := func(ctx context.Context, id string) (bool, error) {
		return true, nil
	}

	g := NewRandom("ATT_", 6, alwaysTaken)
	id, err := g.Next(context.Background())
	require.NoError(t, err)

	// Fallback yields a numeric timestamp suffix, same total length.
	assert.True(t, strings.HasPrefix(id, "ATT_"))
	assert.Len(t, id, len("ATT_")+6)
	for _, c := range id[len("ATT_"):] {
		assert.True(t, c >= '0' && c <= '9', "fallback suffix must be numeric, got %q", id)
	}
}

type fakeCounterStore struct {
	values map[string]int64
}

func (f *fakeCounterStore) Increment(ctx context.Context, name string) (int64, error) {
	if f.values == nil {
		f.values = make(map[string]int64)
	}
	f.values[name]++
	return f.values[name], nil
}

func TestSequential_ZeroPadding(t *testing.T) {
	store := &fakeCounterStore{}
	g := NewSequential(store, "employee", "EMP_", 5)

	id, err := g.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EMP_00001", id)

	id, err = g.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EMP_00002", id)
}

func TestSequential_WidthOverflow(t *testing.T) {
	store := &fakeCounterStore{values: map[string]int64{"employee": 99999}}
	g := NewSequential(store, "employee", "EMP_", 5)

	id, err := g.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EMP_100000", id)
}
