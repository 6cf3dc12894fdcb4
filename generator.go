package pixavatar

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/esimov/pixavatar/prng"
	"github.com/esimov/pixavatar/utils"
)

const (
	// DefaultComplexity is the default grid side length in cells.
	DefaultComplexity = 16

	// MaxComplexity is the widest grid the generator supports. The coordinates are drawn
	// from float64 values, which represent integers exactly only up to 2^53.
	MaxComplexity = 53

	// colorSpace is the number of distinct 24 bit RGB colors.
	colorSpace = 1 << 24
)

// SeedProvider supplies a seed whenever the generator has none configured.
type SeedProvider func() string

// DefaultSeedProvider returns an unpredictable seed mixing the wall clock with
// the entropy of the math/rand/v2 global source.
func DefaultSeedProvider() string {
	return strconv.FormatUint(uint64(time.Now().UnixNano())^rand.Uint64(), 36)
}

// SeedOf renders any value as seed text.
func SeedOf(v any) string {
	return fmt.Sprint(v)
}

// Generator produces random avatar data from a seed.
type Generator struct {
	// Complexity is the grid side length in cells. Values below 1 produce degenerate data.
	Complexity int
	// Separator joins the tokens of the generated avatar data.
	Separator string
	// Seed makes the output reproducible. When empty the SeedProvider is called.
	Seed string
	// SeedProvider is used when no Seed is set. Defaults to DefaultSeedProvider.
	SeedProvider SeedProvider
}

// NewGenerator returns a generator initialized with the default options.
func NewGenerator() *Generator {
	return &Generator{
		Complexity:   DefaultComplexity,
		Separator:    DefaultSeparator,
		SeedProvider: DefaultSeedProvider,
	}
}

// Generate returns the avatar data text using the configured or the provided seed.
func (g *Generator) Generate() (string, error) {
	seed := g.Seed
	if seed == "" {
		provider := g.SeedProvider
		if provider == nil {
			provider = DefaultSeedProvider
		}
		seed = provider()
	}
	return g.GenerateFromSeed(seed)
}

// GenerateFromSeed returns the avatar data text derived from seed, ignoring the configured Seed.
func (g *Generator) GenerateFromSeed(seed string) (string, error) {
	if g.Separator == "" {
		return "", ErrInvalidSeparator
	}
	complexity := utils.Max(g.Complexity, 0)
	if complexity > MaxComplexity {
		return "", fmt.Errorf("%w: %d is greater than %d", ErrInvalidComplexity, complexity, MaxComplexity)
	}

	rnd := prng.FromSeed(seed)

	// The x axis is kept in the lower half of the coordinate space.
	xAxis := uint64(rnd.Next() * math.Ldexp(1, complexity-1))
	// The y axis is never zero, otherwise every row would mirror the columns.
	yAxis := uint64(rnd.Next()*(math.Ldexp(1, complexity)-1)) + 1

	colors := make([]uint32, complexity)
	for i := range colors {
		colors[i] = uint32(rnd.Next() * colorSpace)
	}

	return Encode(xAxis, yAxis, colors, g.Separator), nil
}
