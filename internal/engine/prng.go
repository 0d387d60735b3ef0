package engine

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// SeedFromString hashes s down to a 64-bit seed.
func SeedFromString(s string) uint64 {
	h := sha256.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(h[:8])
}

// Derive keys an HMAC with base and mixes in label. Labels are stable strings
// such as "day:4:memory".
func Derive(base uint64, label string) uint64 {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, base)
	m := hmac.New(sha256.New, key)
	_, _ = m.Write([]byte(label))
	sum := m.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}

// Seed is the per-session root for cosmetic randomness (memory deck order).
// It never influences progress.
type Seed struct {
	Text string
	root uint64
}

// NewSeed creates a deterministic Seed from text. Empty text is rejected.
func NewSeed(text string) (Seed, error) {
	if text == "" {
		return Seed{}, fmt.Errorf("seed text must not be empty")
	}
	return Seed{Text: text, root: SeedFromString(text)}, nil
}

// Stream returns a deterministic RNG stream for label.
func (s Seed) Stream(label string) *Stream {
	return newStream(Derive(s.root, label))
}

// SplitMix64 is the generator behind every Stream.
type SplitMix64 struct{ state uint64 }

func newSplitMix64(seed uint64) *SplitMix64 { return &SplitMix64{state: seed} }

func (s *SplitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (s *SplitMix64) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.next() % uint64(n))
}

// Stream is a labelled, reproducible sequence of random numbers.
type Stream struct {
	base uint64
	sm   *SplitMix64
}

func newStream(seed uint64) *Stream {
	return &Stream{base: seed, sm: newSplitMix64(seed)}
}

// Intn returns a value in [0, n); 0 when n <= 0.
func (s *Stream) Intn(n int) int { return s.sm.intn(n) }

// Shuffle permutes n elements with Fisher-Yates, calling swap like rand.Shuffle.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.Intn(i+1))
	}
}

// Child derives an independent stream from this stream's seed.
func (s *Stream) Child(label string) *Stream { return newStream(Derive(s.base, label)) }
