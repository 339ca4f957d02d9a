package repository

import (
	"context"
	"fmt"

	"guide_catalog/internal/storage/postgresql"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db      *pgxpool.Pool
	Chapter ChapterRepository
	Article ArticleRepository
	Tariff  TariffRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := postgresql.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		db:      db,
		Chapter: NewChapterRepository(db),
		Article: NewArticleRepository(db),
		Tariff:  NewTariffRepository(db),
	}, nil
}

func (r *Repository) Close() {
	r.db.Close()
}
