package tracking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory CodeStore recording allocated codes
type fakeStore struct {
	taken  map[string]bool
	checks int
}

func newFakeStore() *fakeStore {
	return &fakeStore{taken: make(map[string]bool)}
}

func (s *fakeStore) CodeExists(code string) (bool, error) {
	s.checks++
	return s.taken[code], nil
}

// collidingStore reports every candidate as taken
type collidingStore struct {
	checks int
}

func (s *collidingStore) CodeExists(code string) (bool, error) {
	s.checks++
	return true, nil
}

func TestNewAllocator_ValidatesConfig(t *testing.T) {
	store := newFakeStore()

	_, err := NewAllocator(Config{Alphabet: "", Length: 4, MaxAttempts: 10}, store)
	assert.Error(t, err)

	_, err = NewAllocator(Config{Alphabet: "ABC", Length: 0, MaxAttempts: 10}, store)
	assert.Error(t, err)

	_, err = NewAllocator(Config{Alphabet: "ABC", Length: 4, MaxAttempts: 0}, store)
	assert.Error(t, err)

	_, err = NewAllocator(DefaultConfig(), nil)
	assert.Error(t, err)

	_, err = NewAllocator(DefaultConfig(), store)
	assert.NoError(t, err)
}

func TestAllocate_CodeShape(t *testing.T) {
	config := DefaultConfig()
	allocator, err := NewAllocator(config, newFakeStore())
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		code, err := allocator.Allocate()
		require.NoError(t, err)
		assert.Len(t, code, config.Length)
		for _, ch := range code {
			assert.Contains(t, config.Alphabet, string(ch))
		}
	}
}

func TestAllocate_ExcludesAmbiguousCharacters(t *testing.T) {
	config := DefaultConfig()
	for _, forbidden := range []string{"0", "O", "1", "I"} {
		assert.NotContains(t, config.Alphabet, forbidden)
	}
}

func TestGenerate_UsesConfiguredAlphabet(t *testing.T) {
	allocator, err := NewAllocator(Config{Alphabet: "AB", Length: 8, MaxAttempts: 5}, newFakeStore())
	require.NoError(t, err)

	code, err := allocator.Generate()
	require.NoError(t, err)
	assert.Len(t, code, 8)
	assert.Equal(t, "", strings.Map(func(r rune) rune {
		if r == 'A' || r == 'B' {
			return -1
		}
		return r
	}, code))
}

func TestAllocate_UniqueAcrossBatch(t *testing.T) {
	store := newFakeStore()
	allocator, err := NewAllocator(DefaultConfig(), store)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := allocator.Allocate()
		require.NoError(t, err)
		assert.False(t, seen[code], "code %s allocated twice", code)
		seen[code] = true
		// Simulate the caller persisting the announcement row
		store.taken[code] = true
	}
}

func TestAllocate_ExhaustsAfterConfiguredAttempts(t *testing.T) {
	store := &collidingStore{}
	allocator, err := NewAllocator(Config{Alphabet: "ABC", Length: 2, MaxAttempts: 7}, store)
	require.NoError(t, err)

	code, err := allocator.Allocate()
	assert.Empty(t, code)
	assert.ErrorIs(t, err, ErrAllocationExhausted)
	assert.Equal(t, 7, store.checks, "allocator must give up after exactly the configured attempts")
}

func TestAllocate_RetriesPastCollisions(t *testing.T) {
	store := newFakeStore()
	// Tiny space: alphabet "AB", length 1. Take "A" so only "B" remains.
	store.taken["A"] = true

	allocator, err := NewAllocator(Config{Alphabet: "AB", Length: 1, MaxAttempts: 50}, store)
	require.NoError(t, err)

	code, err := allocator.Allocate()
	require.NoError(t, err)
	assert.Equal(t, "B", code)
}
