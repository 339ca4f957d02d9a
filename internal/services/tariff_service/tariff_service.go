package services

import (
	"context"
	"log/slog"

	"guide_catalog/internal/lib/logger/sl"
	"guide_catalog/internal/repository"
	"guide_catalog/internal/transport/http/dto"
)

type TariffService struct {
	log  *slog.Logger
	repo repository.TariffRepository
}

func NewTariffService(log *slog.Logger, repo repository.TariffRepository) *TariffService {
	return &TariffService{log: log, repo: repo}
}

// GetTariffByID возвращает тариф по ID.
// Неактивные тарифы клиентам не отдаются.
func (s *TariffService) GetTariffByID(ctx context.Context, tariffID int64) (*dto.TariffResponse, error) {
	const op = "tariff_service.GetTariffByID"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("tariff_id", tariffID),
	)

	tariff, err := s.repo.GetActiveTariff(ctx, tariffID)
	if err != nil {
		log.Warn("failed to get tariff", sl.Err(err))
		return nil, err
	}

	return &dto.TariffResponse{
		ID:           tariff.ID,
		Name:         tariff.Name,
		DurationDays: tariff.DurationDays,
		Price:        tariff.Price,
		Currency:     tariff.Currency,
		IsActive:     tariff.IsActive,
	}, nil
}
