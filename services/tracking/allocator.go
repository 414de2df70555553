package tracking

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrAllocationExhausted is returned when no unique tracking code could be
// found within the configured attempt ceiling. Callers must surface this as a
// retryable server error, never fall back to a duplicate code.
var ErrAllocationExhausted = errors.New("no unique tracking code found within the attempt limit")

// Config holds the allocator settings. It is passed in at construction time
// instead of living in package globals so tests can run with tiny alphabets.
type Config struct {
	Alphabet    string
	Length      int
	MaxAttempts int
}

// DefaultConfig returns the production settings: 4 characters drawn from
// uppercase letters and digits minus the visually ambiguous 0/O/1/I, with a
// ceiling of 10 collision retries.
func DefaultConfig() Config {
	return Config{
		Alphabet:    "ABCDEFGHJKLMNPQRSTUVWXYZ23456789",
		Length:      4,
		MaxAttempts: 10,
	}
}

// CodeStore reports whether a tracking code is already taken by any
// announcement ever created, including inactive ones.
type CodeStore interface {
	CodeExists(code string) (bool, error)
}

// Allocator produces tracking codes that are unique at the moment of
// assignment. The store pre-check only reduces insert-time collisions; the
// database unique index on tracking_code remains the final authority.
type Allocator struct {
	config Config
	store  CodeStore
}

// NewAllocator creates an allocator with the given configuration
func NewAllocator(config Config, store CodeStore) (*Allocator, error) {
	if config.Alphabet == "" {
		return nil, fmt.Errorf("tracking alphabet must not be empty")
	}
	if config.Length <= 0 {
		return nil, fmt.Errorf("tracking code length must be positive, got %d", config.Length)
	}
	if config.MaxAttempts <= 0 {
		return nil, fmt.Errorf("max attempts must be positive, got %d", config.MaxAttempts)
	}
	if store == nil {
		return nil, fmt.Errorf("code store is required")
	}
	return &Allocator{config: config, store: store}, nil
}

// Config returns the allocator configuration
func (a *Allocator) Config() Config {
	return a.config
}

// Generate draws one candidate code uniformly at random from the alphabet
func (a *Allocator) Generate() (string, error) {
	var sb strings.Builder
	alphabetSize := big.NewInt(int64(len(a.config.Alphabet)))

	for i := 0; i < a.config.Length; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to draw random code character: %w", err)
		}
		sb.WriteByte(a.config.Alphabet[n.Int64()])
	}

	return sb.String(), nil
}

// Allocate returns a code not currently present in the store, retrying on
// collision up to the configured ceiling. It has no side effects; the caller's
// insert transaction provides the actual uniqueness guarantee.
func (a *Allocator) Allocate() (string, error) {
	for attempt := 0; attempt < a.config.MaxAttempts; attempt++ {
		code, err := a.Generate()
		if err != nil {
			return "", err
		}

		exists, err := a.store.CodeExists(code)
		if err != nil {
			return "", fmt.Errorf("failed to check tracking code collision: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", ErrAllocationExhausted
}
