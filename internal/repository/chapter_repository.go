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

const chaptersTable = "chapters"

type ChapterRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewChapterRepository(db *pgxpool.Pool) *ChapterRepo {
	return &ChapterRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveChapter вставляет раздел в конец списка.
// Позиция вычисляется внутри самой вставки, отдельного запроса нет.
func (r *ChapterRepo) SaveChapter(ctx context.Context, chapter models.Chapter) (int64, error) {
	const op = "repository.chapter_repository.SaveChapter"

	query := r.sb.Insert(chaptersTable).
		Columns("title", "photo_path", "position").
		Values(
			chapter.Title,
			chapter.PhotoPath,
			sq.Expr("(SELECT COALESCE(MAX(position), 0) + 1 FROM "+chaptersTable+")"),
		).
		Suffix("RETURNING id")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build query: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ChapterRepo) GetChapterByID(ctx context.Context, chapterID int64) (*models.Chapter, error) {
	const op = "repository.chapter_repository.GetChapterByID"

	query := r.sb.Select("id", "title", "photo_path", "position").
		From(chaptersTable).
		Where(sq.Eq{"id": chapterID})

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var chapter models.Chapter
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&chapter.ID,
		&chapter.Title,
		&chapter.PhotoPath,
		&chapter.Position,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrChapterNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &chapter, nil
}

func (r *ChapterRepo) GetChapters(ctx context.Context) ([]models.Chapter, error) {
	const op = "repository.chapter_repository.GetChapters"

	query := r.sb.Select("id", "title", "photo_path", "position").
		From(chaptersTable).
		OrderBy("position ASC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	chapters := make([]models.Chapter, 0)
	for rows.Next() {
		var chapter models.Chapter
		if err := rows.Scan(&chapter.ID, &chapter.Title, &chapter.PhotoPath, &chapter.Position); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		chapters = append(chapters, chapter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return chapters, nil
}

func (r *ChapterRepo) SearchChapters(ctx context.Context, title string) ([]models.Chapter, error) {
	const op = "repository.chapter_repository.SearchChapters"

	query := r.sb.Select("id", "title", "photo_path", "position").
		From(chaptersTable).
		Where(sq.ILike{"title": "%" + title + "%"}).
		OrderBy("position ASC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	chapters := make([]models.Chapter, 0)
	for rows.Next() {
		var chapter models.Chapter
		if err := rows.Scan(&chapter.ID, &chapter.Title, &chapter.PhotoPath, &chapter.Position); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		chapters = append(chapters, chapter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return chapters, nil
}

func (r *ChapterRepo) UpdateChapterFields(ctx context.Context, chapterID int64, updates map[string]interface{}) error {
	const op = "repository.chapter_repository.UpdateChapterFields"

	if len(updates) == 0 {
		return fmt.Errorf("%s: no fields to update", op)
	}

	allowedFields := map[string]bool{
		"title":      true,
		"photo_path": true,
		"position":   true,
	}

	updateBuilder := r.sb.Update(chaptersTable).Where(sq.Eq{"id": chapterID})

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field %s is not allowed for update", op, field)
		}
		updateBuilder = updateBuilder.Set(field, value)
	}

	sqlQuery, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}

	result, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrChapterNotFound)
	}

	return nil
}

// DeleteChapter удаляет раздел и его статьи в одной транзакции.
// Пути обложек собираются до удаления строк, иначе файлы останутся на диске.
func (r *ChapterRepo) DeleteChapter(ctx context.Context, chapterID int64) ([]string, error) {
	const op = "repository.chapter_repository.DeleteChapter"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer tx.Rollback(ctx)

	chapterQuery, chapterArgs, err := r.sb.Select("photo_path").
		From(chaptersTable).
		Where(sq.Eq{"id": chapterID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var chapterPhoto *string
	if err := tx.QueryRow(ctx, chapterQuery, chapterArgs...).Scan(&chapterPhoto); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrChapterNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var photoPaths []string
	if chapterPhoto != nil {
		photoPaths = append(photoPaths, *chapterPhoto)
	}

	articlesQuery, articlesArgs, err := r.sb.Select("photo_path").
		From(articlesTable).
		Where(sq.And{
			sq.Eq{"chapter_id": chapterID},
			sq.NotEq{"photo_path": nil},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	rows, err := tx.Query(ctx, articlesQuery, articlesArgs...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		photoPaths = append(photoPaths, path)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	deleteArticles, deleteArticlesArgs, err := r.sb.Delete(articlesTable).
		Where(sq.Eq{"chapter_id": chapterID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	if _, err := tx.Exec(ctx, deleteArticles, deleteArticlesArgs...); err != nil {
		return nil, fmt.Errorf("%s: delete articles: %w", op, err)
	}

	deleteChapter, deleteChapterArgs, err := r.sb.Delete(chaptersTable).
		Where(sq.Eq{"id": chapterID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	if _, err := tx.Exec(ctx, deleteChapter, deleteChapterArgs...); err != nil {
		return nil, fmt.Errorf("%s: delete chapter: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: commit tx: %w", op, err)
	}

	return photoPaths, nil
}

// UpdateChaptersOrder применяет новые позиции всем разделам из списка.
// Если хоть один id не найден, транзакция откатывается целиком.
func (r *ChapterRepo) UpdateChaptersOrder(ctx context.Context, items []models.OrderUpdate) error {
	const op = "repository.chapter_repository.UpdateChaptersOrder"

	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer tx.Rollback(ctx)

	for _, item := range items {
		sqlQuery, args, err := r.sb.Update(chaptersTable).
			Set("position", item.Position).
			Where(sq.Eq{"id": item.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%s: build query: %w", op, err)
		}

		result, err := tx.Exec(ctx, sqlQuery, args...)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if result.RowsAffected() == 0 {
			return fmt.Errorf("%s: chapter %d: %w", op, item.ID, storage.ErrChapterNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit tx: %w", op, err)
	}

	return nil
}
