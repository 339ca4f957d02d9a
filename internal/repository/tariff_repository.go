package repository

import (
	"context"
	"errors"
	"fmt"

	"guide_catalog/internal/domain/models"
	"guide_catalog/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const tariffsTable = "tariffs"

type TariffRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewTariffRepository(db *pgxpool.Pool) *TariffRepo {
	return &TariffRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetActiveTariff возвращает тариф только если он помечен активным.
// Неактивный тариф для клиента неотличим от несуществующего.
func (r *TariffRepo) GetActiveTariff(ctx context.Context, tariffID int64) (*models.Tariff, error) {
	const op = "repository.tariff_repository.GetActiveTariff"

	query := r.sb.Select("id", "name", "duration_days", "price", "currency", "is_active").
		From(tariffsTable).
		Where(sq.Eq{"id": tariffID, "is_active": true})

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var tariff models.Tariff
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&tariff.ID,
		&tariff.Name,
		&tariff.DurationDays,
		&tariff.Price,
		&tariff.Currency,
		&tariff.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrTariffNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &tariff, nil
}
