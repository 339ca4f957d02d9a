package repository

import (
	"context"

	"guide_catalog/internal/domain/models"
)

type ChapterRepository interface {
	// SaveChapter добавляет раздел в конец списка и возвращает его id
	SaveChapter(ctx context.Context, chapter models.Chapter) (int64, error)

	// GetChapterByID возвращает раздел по id
	GetChapterByID(ctx context.Context, chapterID int64) (*models.Chapter, error)

	// GetChapters возвращает все разделы, отсортированные по позиции
	GetChapters(ctx context.Context) ([]models.Chapter, error)

	// SearchChapters ищет разделы по подстроке названия без учёта регистра
	SearchChapters(ctx context.Context, title string) ([]models.Chapter, error)

	// UpdateChapterFields выполняет частичное обновление полей раздела
	UpdateChapterFields(ctx context.Context, chapterID int64, updates map[string]interface{}) error

	// DeleteChapter удаляет раздел вместе со статьями и возвращает
	// пути всех файлов обложек, которые нужно удалить с диска
	DeleteChapter(ctx context.Context, chapterID int64) ([]string, error)

	// UpdateChaptersOrder массово обновляет позиции разделов в одной транзакции
	UpdateChaptersOrder(ctx context.Context, items []models.OrderUpdate) error
}

type ArticleRepository interface {
	// SaveArticle добавляет статью в конец списка внутри раздела и возвращает её id
	SaveArticle(ctx context.Context, article models.Article) (int64, error)

	// GetArticleByID возвращает статью по id
	GetArticleByID(ctx context.Context, articleID int64) (*models.Article, error)

	// GetArticlesByChapter возвращает статьи раздела, отсортированные по позиции
	GetArticlesByChapter(ctx context.Context, chapterID int64) ([]models.Article, error)

	// SearchArticles ищет статьи по подстроке названия или описания
	SearchArticles(ctx context.Context, query string) ([]models.Article, error)

	// UpdateArticleFields выполняет частичное обновление полей статьи
	UpdateArticleFields(ctx context.Context, articleID int64, updates map[string]interface{}) error

	// DeleteArticle удаляет статью по id
	DeleteArticle(ctx context.Context, articleID int64) error

	// UpdateArticlesOrder массово обновляет позиции статей в одной транзакции
	UpdateArticlesOrder(ctx context.Context, items []models.OrderUpdate) error

	// ChapterExists проверяет наличие раздела перед привязкой статьи
	ChapterExists(ctx context.Context, chapterID int64) (bool, error)
}

type TariffRepository interface {
	// GetActiveTariff возвращает тариф по id, если он активен
	GetActiveTariff(ctx context.Context, tariffID int64) (*models.Tariff, error)
}
