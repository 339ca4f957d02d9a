package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"guide_catalog/internal/domain/models"
	"guide_catalog/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTariffRepository реализация мок-репозитория
type MockTariffRepository struct {
	mock.Mock
}

func (m *MockTariffRepository) GetActiveTariff(ctx context.Context, tariffID int64) (*models.Tariff, error) {
	args := m.Called(ctx, tariffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tariff), args.Error(1)
}

func TestTariffService_GetTariffByID(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("active tariff", func(t *testing.T) {
		mockRepo := new(MockTariffRepository)
		service := NewTariffService(log, mockRepo)

		tariff := &models.Tariff{
			ID:           1,
			Name:         "Премиум",
			DurationDays: 30,
			Price:        990.00,
			Currency:     "RUB",
			IsActive:     true,
		}
		mockRepo.On("GetActiveTariff", ctx, int64(1)).Return(tariff, nil).Once()

		resp, err := service.GetTariffByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Премиум", resp.Name)
		assert.Equal(t, 30, resp.DurationDays)
		assert.InDelta(t, 990.00, resp.Price, 0.001)
		assert.Equal(t, "RUB", resp.Currency)
		assert.True(t, resp.IsActive)

		mockRepo.AssertExpectations(t)
	})

	t.Run("tariff not found", func(t *testing.T) {
		mockRepo := new(MockTariffRepository)
		service := NewTariffService(log, mockRepo)

		notFound := fmt.Errorf("repo: %w", storage.ErrTariffNotFound)
		mockRepo.On("GetActiveTariff", ctx, int64(404)).Return(nil, notFound).Once()

		_, err := service.GetTariffByID(ctx, 404)
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrTariffNotFound)
	})
}
