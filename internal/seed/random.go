// ABOUTME: Injectable randomness for the generators.
// ABOUTME: Every uniform, weighted, or sampled choice goes through a Source so tests can fix the sequence.

package seed

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Source is the only randomness the generators consume. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSource returns a math/rand source. A zero seed means "seed from the clock".
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// between returns a uniform int in [lo, hi].
func between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}

func chance(src Source, p float64) bool {
	return src.Float64() < p
}

// sample draws k distinct items without replacement, preserving draw order.
func sample[T any](src Source, items []T, k int) []T {
	pool := append([]T(nil), items...)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// sourceReader adapts a Source to io.Reader so uuid generation stays reproducible.
type sourceReader struct {
	src Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.Intn(256))
	}
	return len(p), nil
}

func newUUID(src Source) string {
	return uuid.Must(uuid.NewRandomFromReader(sourceReader{src})).String()
}
