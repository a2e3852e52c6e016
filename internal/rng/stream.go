// Package rng provides the deterministic random stream consumed by the duel engine.
//
// The stream is a Keccak-256 hash chain: every draw replaces the 256-bit
// state with its hash and reduces the new state modulo the requested bound.
// The same seed and the same sequence of Draw calls always yield the same values.
package rng

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/crypto/sha3"
)

// StreamVersion identifies the bit-stream algorithm. Any change to hashing or
// bound reduction must bump it.
const StreamVersion = 1

// SeedSize is the size of a seed in bytes.
const SeedSize = 32

// Seed is a 256-bit big-endian seed.
type Seed [SeedSize]byte

// SeedFromUint64 places v in the low 64 bits of a seed.
func SeedFromUint64(v uint64) Seed {
	var s Seed
	binary.BigEndian.PutUint64(s[SeedSize-8:], v)
	return s
}

// SeedFromHex parses a hex seed with an optional 0x prefix.
// Shorter inputs are left-padded with zeros, as a big-endian integer.
func SeedFromHex(h string) (Seed, error) {
	var s Seed
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if len(h)%2 == 1 {
		h = "0" + h
	}
	raw, err := hex.DecodeString(h)
	if err != nil {
		return s, fmt.Errorf("decoding seed: %w", err)
	}
	if len(raw) > SeedSize {
		return s, fmt.Errorf("decoding seed: %d bytes exceeds %d", len(raw), SeedSize)
	}
	copy(s[SeedSize-len(raw):], raw)
	return s, nil
}

// String returns the seed as 0x-prefixed hex.
func (s Seed) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// Stream is a reseedable counter-mode generator. Not safe for concurrent use;
// every duel owns its own Stream.
type Stream struct {
	state [SeedSize]byte
	draws uint64
}

// New creates a stream positioned at seed.
func New(seed Seed) *Stream {
	return &Stream{state: seed}
}

// Reseed resets the stream to seed.
func (s *Stream) Reseed(seed Seed) {
	s.state = seed
	s.draws = 0
}

// Draw advances the stream and returns a value in [0, bound).
// A zero bound still advances the stream and returns 0.
func (s *Stream) Draw(bound uint64) uint64 {
	h := sha3.NewLegacyKeccak256()
	h.Write(s.state[:])
	h.Sum(s.state[:0])
	s.draws++

	if bound == 0 {
		return 0
	}
	return mod256(s.state, bound)
}

// Draws returns how many values have been drawn since the last (re)seed.
func (s *Stream) Draws() uint64 {
	return s.draws
}

// mod256 reduces a big-endian 256-bit integer modulo m, limb by limb.
func mod256(v [SeedSize]byte, m uint64) uint64 {
	var r uint64
	for i := 0; i < SeedSize; i += 8 {
		r = bits.Rem64(r, binary.BigEndian.Uint64(v[i:]), m)
	}
	return r
}
