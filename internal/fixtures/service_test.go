package fixtures

import (
	"math/rand"
	"testing"
	"time"

	"github.com/commercekit/payfix/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) *Service {
	gen := generator.New(
		generator.WithRand(rand.New(rand.NewSource(1))),
		generator.WithNow(func() time.Time {
			return time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
		}),
	)
	return NewService(gen, zaptest.NewLogger(t))
}

func TestService_Generate(t *testing.T) {
	svc := newTestService(t)

	batch := svc.Generate(10)
	assert.Len(t, batch, 10)

	assert.Empty(t, svc.Generate(0))
}

func TestService_DefaultIsMemoized(t *testing.T) {
	svc := newTestService(t)

	first := svc.Default()
	require.Len(t, first, generator.DefaultCount)

	second := svc.Default()
	assert.Equal(t, len(first), len(second))
	// Same backing array: consumers share one precomputed collection.
	assert.Same(t, &first[0], &second[0])
}

func TestNewService_NilLogger(t *testing.T) {
	svc := NewService(generator.New(), nil)
	assert.NotPanics(t, func() { svc.Generate(1) })
}
