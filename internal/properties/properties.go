// Package properties generates random scalar feature properties.
package properties

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	maxNumber = 1000
	minWords  = 3
	maxWords  = 10 // exclusive
)

// Generator draws property values from a single random source.
// It is not safe for concurrent use.
type Generator struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// New returns a Generator backed by src.
func New(src rand.Source) *Generator {
	return &Generator{
		rng:   rand.New(src),
		faker: gofakeit.NewFaker(src, false),
	}
}

// Properties returns n properties keyed prop1..propN.
func (g *Generator) Properties(n int) map[string]any {
	props := make(map[string]any, n)
	for i := 1; i <= n; i++ {
		props["prop"+strconv.Itoa(i)] = g.Value()
	}

	return props
}

// Value returns an integer in [0, 1000), a phrase of 3 to 9 words or a
// boolean, each with equal probability.
func (g *Generator) Value() any {
	switch g.rng.IntN(3) {
	case 0:
		return g.rng.IntN(maxNumber)
	case 1:
		return g.phrase(minWords + g.rng.IntN(maxWords-minWords))
	default:
		return g.rng.IntN(2) == 1
	}
}

func (g *Generator) phrase(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = g.word()
	}

	return strings.Join(words, " ")
}

// word returns a single token; some dictionary entries are multi-word
// phrases such as "each other".
func (g *Generator) word() string {
	if fields := strings.Fields(g.faker.Word()); len(fields) > 0 {
		return fields[0]
	}

	return "lorem"
}
