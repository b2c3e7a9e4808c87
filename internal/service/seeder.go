package service

import (
	"context"
	"log/slog"

	"github.com/mebella/catalog-api/internal/apperr"
	"github.com/mebella/catalog-api/internal/repository"
)

const (
	SeedReasonStoreUnavailable = "database not available"
	SeedReasonAlreadyHasData   = "already has data"
)

// SeedResult is the outcome of one seeding attempt.
type SeedResult struct {
	Seeded   bool   `json:"seeded"`
	Inserted int    `json:"inserted,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Count    int64  `json:"count,omitempty"`
}

// Failed reports whether the attempt actually failed, as opposed to being
// skipped. Skipped outcomes (store unavailable, data already present) are
// success from the caller's point of view.
func (r SeedResult) Failed() bool {
	if r.Seeded {
		return false
	}
	return r.Reason != SeedReasonStoreUnavailable && r.Reason != SeedReasonAlreadyHasData
}

// Seeder populates the product collection with sample data when it is empty.
type Seeder struct {
	logger      *slog.Logger
	productRepo repository.ProductRepository
}

func NewSeeder(logger *slog.Logger, productRepo repository.ProductRepository) *Seeder {
	return &Seeder{
		logger:      logger.With(slog.String("service", "seeder")),
		productRepo: productRepo,
	}
}

// SeedIfEmpty inserts the sample products if the collection is empty.
// It is idempotent: any existing data skips the whole batch. Per-item insert
// failures are swallowed so one bad sample does not abort the rest.
func (s *Seeder) SeedIfEmpty(ctx context.Context) SeedResult {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		if apperr.HasCode(err, apperr.StoreUnavailableCode) {
			return SeedResult{Seeded: false, Reason: SeedReasonStoreUnavailable}
		}
		return SeedResult{Seeded: false, Reason: err.Error()}
	}

	if count > 0 {
		return SeedResult{Seeded: false, Reason: SeedReasonAlreadyHasData, Count: count}
	}

	inserted := 0
	for _, product := range sampleProducts() {
		if _, err := s.productRepo.Create(ctx, product); err != nil {
			s.logger.WarnContext(ctx, "error inserting sample product",
				slog.String("name", product.Name),
				slog.Any("error", err))
			continue
		}
		inserted++
	}

	return SeedResult{Seeded: true, Inserted: inserted}
}
