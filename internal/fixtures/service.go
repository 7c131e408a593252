// Package fixtures exposes generated payment batches to read-only consumers.
package fixtures

import (
	"sync"
	"time"

	"github.com/commercekit/payfix/internal/domain"
	"github.com/commercekit/payfix/internal/generator"
	"go.uber.org/zap"
)

// Service wraps a Generator with structured logging and memoizes the default
// batch so dashboard-style consumers can read one shared collection without
// re-invoking generation.
type Service struct {
	gen    *generator.Generator
	logger *zap.Logger

	defaultOnce  sync.Once
	defaultBatch []domain.PaymentRecord
}

// NewService creates a fixture service around gen. A nil logger falls back
// to a no-op logger.
func NewService(gen *generator.Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gen: gen, logger: logger}
}

// Generate produces a fresh batch of count records.
func (s *Service) Generate(count int) []domain.PaymentRecord {
	start := time.Now()
	batch := s.gen.Batch(count)
	s.logger.Info("generated payment fixtures",
		zap.Int("count", len(batch)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return batch
}

// Default returns the shared batch of generator.DefaultCount records,
// generating it on first use. Callers must treat the returned slice as
// read-only.
func (s *Service) Default() []domain.PaymentRecord {
	s.defaultOnce.Do(func() {
		s.defaultBatch = s.Generate(generator.DefaultCount)
	})
	return s.defaultBatch
}
