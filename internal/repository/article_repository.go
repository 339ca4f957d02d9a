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

const articlesTable = "articles"

type ArticleRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewArticleRepository(db *pgxpool.Pool) *ArticleRepo {
	return &ArticleRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveArticle вставляет статью в конец списка своего раздела.
// Позиции нумеруются отдельно внутри каждого раздела.
func (r *ArticleRepo) SaveArticle(ctx context.Context, article models.Article) (int64, error) {
	const op = "repository.article_repository.SaveArticle"

	query := r.sb.Insert(articlesTable).
		Columns("title", "description", "link", "photo_path", "chapter_id", "position").
		Values(
			article.Title,
			article.Description,
			article.Link,
			article.PhotoPath,
			article.ChapterID,
			sq.Expr("(SELECT COALESCE(MAX(position), 0) + 1 FROM "+articlesTable+" WHERE chapter_id = ?)", article.ChapterID),
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

func (r *ArticleRepo) GetArticleByID(ctx context.Context, articleID int64) (*models.Article, error) {
	const op = "repository.article_repository.GetArticleByID"

	query := r.sb.Select("id", "title", "description", "link", "photo_path", "position", "chapter_id").
		From(articlesTable).
		Where(sq.Eq{"id": articleID})

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var article models.Article
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&article.ID,
		&article.Title,
		&article.Description,
		&article.Link,
		&article.PhotoPath,
		&article.Position,
		&article.ChapterID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrArticleNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &article, nil
}

func (r *ArticleRepo) GetArticlesByChapter(ctx context.Context, chapterID int64) ([]models.Article, error) {
	const op = "repository.article_repository.GetArticlesByChapter"

	query := r.sb.Select("id", "title", "description", "link", "photo_path", "position", "chapter_id").
		From(articlesTable).
		Where(sq.Eq{"chapter_id": chapterID}).
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

	articles := make([]models.Article, 0)
	for rows.Next() {
		var article models.Article
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Description,
			&article.Link,
			&article.PhotoPath,
			&article.Position,
			&article.ChapterID,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return articles, nil
}

// SearchArticles ищет по названию и описанию без учёта регистра.
func (r *ArticleRepo) SearchArticles(ctx context.Context, query string) ([]models.Article, error) {
	const op = "repository.article_repository.SearchArticles"

	pattern := "%" + query + "%"

	selectQuery := r.sb.Select("id", "title", "description", "link", "photo_path", "position", "chapter_id").
		From(articlesTable).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("position ASC")

	sqlQuery, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0)
	for rows.Next() {
		var article models.Article
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Description,
			&article.Link,
			&article.PhotoPath,
			&article.Position,
			&article.ChapterID,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return articles, nil
}

func (r *ArticleRepo) UpdateArticleFields(ctx context.Context, articleID int64, updates map[string]interface{}) error {
	const op = "repository.article_repository.UpdateArticleFields"

	if len(updates) == 0 {
		return fmt.Errorf("%s: no fields to update", op)
	}

	allowedFields := map[string]bool{
		"title":       true,
		"description": true,
		"link":        true,
		"photo_path":  true,
		"position":    true,
		"chapter_id":  true,
	}

	updateBuilder := r.sb.Update(articlesTable).Where(sq.Eq{"id": articleID})

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
		return fmt.Errorf("%s: %w", op, storage.ErrArticleNotFound)
	}

	return nil
}

func (r *ArticleRepo) DeleteArticle(ctx context.Context, articleID int64) error {
	const op = "repository.article_repository.DeleteArticle"

	sqlQuery, args, err := r.sb.Delete(articlesTable).
		Where(sq.Eq{"id": articleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}

	result, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrArticleNotFound)
	}

	return nil
}

// UpdateArticlesOrder применяет новые позиции всем статьям из списка.
// Если хоть один id не найден, транзакция откатывается целиком.
func (r *ArticleRepo) UpdateArticlesOrder(ctx context.Context, items []models.OrderUpdate) error {
	const op = "repository.article_repository.UpdateArticlesOrder"

	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer tx.Rollback(ctx)

	for _, item := range items {
		sqlQuery, args, err := r.sb.Update(articlesTable).
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
			return fmt.Errorf("%s: article %d: %w", op, item.ID, storage.ErrArticleNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit tx: %w", op, err)
	}

	return nil
}

func (r *ArticleRepo) ChapterExists(ctx context.Context, chapterID int64) (bool, error) {
	const op = "repository.article_repository.ChapterExists"

	sqlQuery, args, err := r.sb.Select("1").
		From(chaptersTable).
		Where(sq.Eq{"id": chapterID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: build query: %w", op, err)
	}

	var one int
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}
