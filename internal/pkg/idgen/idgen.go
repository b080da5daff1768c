package idgen

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// Display ID generation. Two strategies coexist: collision-checked random
// strings for high-volume entities (attendance) and atomic sequential
// counters for entities that need dense, ordered numbering (employees).

// Alphabet excludes characters that are easy to confuse on printed badges
// and reports: 0/O, 1/I/L.
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const defaultMaxAttempts = 5

// ExistsFunc reports whether a candidate ID is already taken.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

type Generator interface {
	Next(ctx context.Context) (string, error)
}

// Random generates prefix + fixed-length random string, retrying on
// collision up to maxAttempts. After exhaustion it falls back to a
// timestamp-derived suffix.
type Random struct {
	prefix      string
	length      int
	maxAttempts int
	exists      ExistsFunc
}

func NewRandom(prefix string, length int, exists ExistsFunc) *Random {
	return &Random{
		prefix:      prefix,
		length:      length,
		maxAttempts: defaultMaxAttempts,
		exists:      exists,
	}
}

func (g *Random) Next(ctx context.Context) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate, err := g.randomID()
		if err != nil {
			return "", fmt.Errorf("failed to generate random id: %w", err)
		}

		taken, err := g.exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check id existence: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}

	// All attempts collided. A timestamp suffix is unique enough in
	// practice; the caller's unique index still backstops it.
	suffix := strconv.FormatInt(time.Now().UnixNano(), 10)
	if len(suffix) > g.length {
		suffix = suffix[len(suffix)-g.length:]
	}
	return g.prefix + suffix, nil
}

func (g *Random) randomID() (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, g.length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[n.Int64()]
	}
	return g.prefix + string(buf), nil
}

// CounterStore increments a named counter atomically and returns the new
// value. Concurrent callers must never observe the same value.
type CounterStore interface {
	Increment(ctx context.Context, name string) (int64, error)
}

// Sequential generates prefix + zero-padded counter values.
type Sequential struct {
	store  CounterStore
	name   string
	prefix string
	width  int
}

func NewSequential(store CounterStore, name string, prefix string, width int) *Sequential {
	return &Sequential{
		store:  store,
		name:   name,
		prefix: prefix,
		width:  width,
	}
}

func (g *Sequential) Next(ctx context.Context) (string, error) {
	n, err := g.store.Increment(ctx, g.name)
	if err != nil {
		return "", fmt.Errorf("failed to increment counter %q: %w", g.name, err)
	}
	return fmt.Sprintf("%s%0*d", g.prefix, g.width, n), nil
}
