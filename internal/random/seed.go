// Package random provides seed generation for the feature generators.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSource returns a ChaCha8 source keyed by seed.
func NewSource(seed uint64) *rand.ChaCha8 {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)

	return rand.NewChaCha8(key)
}

// Split draws n independent sources from parent. The result depends only
// on the state of parent, so the same parent seed always yields the same
// sources in the same order.
func Split(parent *rand.ChaCha8, n int) []*rand.ChaCha8 {
	sources := make([]*rand.ChaCha8, n)
	for i := range sources {
		var key [32]byte
		for j := 0; j < len(key); j += 8 {
			binary.LittleEndian.PutUint64(key[j:], parent.Uint64())
		}
		sources[i] = rand.NewChaCha8(key)
	}

	return sources
}
