package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
	n     int
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// LeaderboardName returns a name no earlier call on this generator returned.
func (g *TestDataGenerator) LeaderboardName() string {
	g.n++
	return fmt.Sprintf("%s %s #%d", g.faker.Adjective(), g.faker.Noun(), g.n)
}

// PlayerName returns a plausible gamer tag.
func (g *TestDataGenerator) PlayerName() string {
	return g.faker.Username()
}

// Score returns a score in [0, 100000].
func (g *TestDataGenerator) Score() int64 {
	return int64(g.faker.IntRange(0, 100000))
}
