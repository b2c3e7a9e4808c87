package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mebella/catalog-api/internal/apperr"
	"github.com/mebella/catalog-api/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeederSkipsWhenStoreUnavailable(t *testing.T) {
	repo := &fakeProductRepo{
		countFn: func(context.Context) (int64, error) {
			return 0, apperr.StoreUnavailableErr
		},
	}
	seeder := NewSeeder(testLogger(), repo)

	result := seeder.SeedIfEmpty(context.Background())

	assert.False(t, result.Seeded)
	assert.Equal(t, SeedReasonStoreUnavailable, result.Reason)
	assert.False(t, result.Failed())
}

func TestSeederSkipsWhenDataExists(t *testing.T) {
	created := 0
	repo := &fakeProductRepo{
		countFn: func(context.Context) (int64, error) { return 4, nil },
		createFn: func(context.Context, model.Product) (string, error) {
			created++
			return "", nil
		},
	}
	seeder := NewSeeder(testLogger(), repo)

	result := seeder.SeedIfEmpty(context.Background())

	assert.False(t, result.Seeded)
	assert.Equal(t, SeedReasonAlreadyHasData, result.Reason)
	assert.Equal(t, int64(4), result.Count)
	assert.False(t, result.Failed())
	assert.Zero(t, created, "seeding must never run against non-empty data")
}

func TestSeederInsertsSamplesWhenEmpty(t *testing.T) {
	var names []string
	repo := &fakeProductRepo{
		countFn: func(context.Context) (int64, error) { return 0, nil },
		createFn: func(_ context.Context, product model.Product) (string, error) {
			names = append(names, product.Name)
			return "68b0a1f2e4b0c93f6a1d2e3f", nil
		},
	}
	seeder := NewSeeder(testLogger(), repo)

	result := seeder.SeedIfEmpty(context.Background())

	assert.True(t, result.Seeded)
	assert.Equal(t, 4, result.Inserted)
	assert.Equal(t, []string{"Стул Nordica", "Шкаф Alto 3D", "Тумба Nova", "Стол Loft+"}, names)
	assert.False(t, result.Failed())
}

func TestSeederSwallowsPerItemFailures(t *testing.T) {
	repo := &fakeProductRepo{
		countFn: func(context.Context) (int64, error) { return 0, nil },
		createFn: func(_ context.Context, product model.Product) (string, error) {
			if product.Name == "Тумба Nova" {
				return "", apperr.StoreWriteErr.WrapParent(errors.New("boom"))
			}
			return "68b0a1f2e4b0c93f6a1d2e3f", nil
		},
	}
	seeder := NewSeeder(testLogger(), repo)

	result := seeder.SeedIfEmpty(context.Background())

	assert.True(t, result.Seeded)
	assert.Equal(t, 3, result.Inserted)
}

func TestSeederFailsWhenCountFails(t *testing.T) {
	repo := &fakeProductRepo{
		countFn: func(context.Context) (int64, error) {
			return 0, apperr.StoreReadErr.WrapParent(errors.New("boom"))
		},
	}
	seeder := NewSeeder(testLogger(), repo)

	result := seeder.SeedIfEmpty(context.Background())

	assert.False(t, result.Seeded)
	assert.NotEmpty(t, result.Reason)
	assert.True(t, result.Failed())
}
