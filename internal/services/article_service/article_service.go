package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"

	"guide_catalog/internal/domain/models"
	"guide_catalog/internal/lib/logger/sl"
	"guide_catalog/internal/repository"
	"guide_catalog/internal/storage"
	"guide_catalog/internal/transport/http/dto"
)

// PhotoStorage отвечает за файлы обложек: валидацию, запись и удаление
type PhotoStorage interface {
	SavePhoto(ctx context.Context, file *multipart.FileHeader) (string, error)
	DeletePhoto(ctx context.Context, path string)
	PhotoURL(path *string) *string
}

type ArticleService struct {
	log    *slog.Logger
	repo   repository.ArticleRepository
	photos PhotoStorage
}

func NewArticleService(log *slog.Logger, repo repository.ArticleRepository, photos PhotoStorage) *ArticleService {
	return &ArticleService{log: log, repo: repo, photos: photos}
}

// CreateArticle создает статью в конце списка своего раздела.
// Существование раздела проверяется до сохранения обложки,
// чтобы при неверном chapter_id на диске не оставалось файлов.
func (s *ArticleService) CreateArticle(ctx context.Context, input dto.CreateArticleInput) (*dto.ArticleResponse, error) {
	const op = "article_service.CreateArticle"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", input.Title),
		slog.Int64("chapter_id", input.ChapterID),
	)

	log.Info("creating new article")

	if input.Title == "" || input.Description == "" || input.Link == "" || input.ChapterID == 0 {
		log.Error("missing required fields")
		return nil, fmt.Errorf("title, description, link and chapter_id are required")
	}

	exists, err := s.repo.ChapterExists(ctx, input.ChapterID)
	if err != nil {
		log.Error("failed to check chapter", sl.Err(err))
		return nil, fmt.Errorf("failed to check chapter: %w", err)
	}
	if !exists {
		log.Warn("chapter does not exist")
		return nil, fmt.Errorf("chapter %d: %w", input.ChapterID, storage.ErrChapterNotFound)
	}

	photoPath, err := s.photos.SavePhoto(ctx, input.Photo)
	if err != nil {
		log.Warn("photo rejected", sl.Err(err))
		return nil, err
	}

	article := models.Article{
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		ChapterID:   input.ChapterID,
	}
	if photoPath != "" {
		article.PhotoPath = &photoPath
	}

	id, err := s.repo.SaveArticle(ctx, article)
	if err != nil {
		// Запись не создана, файл обложки больше никому не нужен
		s.photos.DeletePhoto(ctx, photoPath)
		log.Error("failed to save article", sl.Err(err))
		return nil, fmt.Errorf("failed to save article: %w", err)
	}

	log.Info("article created", slog.Int64("article_id", id))
	return s.toArticleResponse(ctx, id)
}

// GetArticleByID возвращает статью по ID
func (s *ArticleService) GetArticleByID(ctx context.Context, articleID int64) (*dto.ArticleResponse, error) {
	const op = "article_service.GetArticleByID"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("article_id", articleID),
	)

	article, err := s.repo.GetArticleByID(ctx, articleID)
	if err != nil {
		log.Warn("failed to get article", sl.Err(err))
		return nil, err
	}

	return s.mapToArticleResponse(article), nil
}

// ListArticlesByChapter возвращает статьи раздела по возрастанию позиции.
// Для неизвестного раздела список просто пуст.
func (s *ArticleService) ListArticlesByChapter(ctx context.Context, chapterID int64) ([]dto.ArticleResponse, error) {
	const op = "article_service.ListArticlesByChapter"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("chapter_id", chapterID),
	)

	articles, err := s.repo.GetArticlesByChapter(ctx, chapterID)
	if err != nil {
		log.Error("failed to list articles", sl.Err(err))
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	response := make([]dto.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		response = append(response, *s.mapToArticleResponse(&article))
	}

	log.Debug("articles listed", slog.Int("count", len(response)))
	return response, nil
}

// SearchArticles ищет статьи по подстроке названия или описания
func (s *ArticleService) SearchArticles(ctx context.Context, query string) ([]dto.ArticleResponse, error) {
	const op = "article_service.SearchArticles"
	log := s.log.With(
		slog.String("op", op),
		slog.String("query", query),
	)

	articles, err := s.repo.SearchArticles(ctx, query)
	if err != nil {
		log.Error("failed to search articles", sl.Err(err))
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	response := make([]dto.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		response = append(response, *s.mapToArticleResponse(&article))
	}

	return response, nil
}

// UpdateArticle обновляет только переданные поля.
// Новая обложка сначала проходит валидацию, и только после успешного
// обновления записи старый файл удаляется с диска.
func (s *ArticleService) UpdateArticle(ctx context.Context, input dto.UpdateArticleInput) (*dto.ArticleResponse, error) {
	const op = "article_service.UpdateArticle"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("article_id", input.ID),
	)

	log.Info("updating article")

	existing, err := s.repo.GetArticleByID(ctx, input.ID)
	if err != nil {
		log.Warn("failed to get article", sl.Err(err))
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Link != nil {
		updates["link"] = *input.Link
	}
	if input.Position != nil {
		updates["position"] = *input.Position
	}
	if input.ChapterID != nil {
		updates["chapter_id"] = *input.ChapterID
	}

	newPhotoPath := ""
	if input.Photo != nil {
		newPhotoPath, err = s.photos.SavePhoto(ctx, input.Photo)
		if err != nil {
			log.Warn("photo rejected", sl.Err(err))
			return nil, err
		}
		updates["photo_path"] = newPhotoPath
	}

	// Пустое обновление не ошибка: вернем статью как есть
	if len(updates) == 0 {
		return s.mapToArticleResponse(existing), nil
	}

	if err := s.repo.UpdateArticleFields(ctx, input.ID, updates); err != nil {
		if newPhotoPath != "" {
			s.photos.DeletePhoto(ctx, newPhotoPath)
		}
		log.Error("failed to update article", sl.Err(err))
		return nil, err
	}

	if newPhotoPath != "" && existing.PhotoPath != nil {
		s.photos.DeletePhoto(ctx, *existing.PhotoPath)
	}

	log.Info("article updated")
	return s.toArticleResponse(ctx, input.ID)
}

// DeleteArticle удаляет статью и файл её обложки
func (s *ArticleService) DeleteArticle(ctx context.Context, articleID int64) error {
	const op = "article_service.DeleteArticle"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("article_id", articleID),
	)

	log.Info("deleting article")

	article, err := s.repo.GetArticleByID(ctx, articleID)
	if err != nil {
		log.Warn("failed to get article", sl.Err(err))
		return err
	}

	if err := s.repo.DeleteArticle(ctx, articleID); err != nil {
		log.Error("failed to delete article", sl.Err(err))
		return err
	}

	if article.PhotoPath != nil {
		s.photos.DeletePhoto(ctx, *article.PhotoPath)
	}

	log.Info("article deleted")
	return nil
}

// ReorderArticles массово переставляет статьи.
// Либо применяются все позиции, либо ни одной.
func (s *ArticleService) ReorderArticles(ctx context.Context, items []dto.OrderItem) error {
	const op = "article_service.ReorderArticles"
	log := s.log.With(
		slog.String("op", op),
		slog.Int("count", len(items)),
	)

	log.Info("reordering articles")

	updates := make([]models.OrderUpdate, 0, len(items))
	for _, item := range items {
		updates = append(updates, models.OrderUpdate{
			ID:       item.ID,
			Position: item.Position,
		})
	}

	if err := s.repo.UpdateArticlesOrder(ctx, updates); err != nil {
		log.Warn("failed to reorder articles", sl.Err(err))
		return err
	}

	log.Info("articles reordered")
	return nil
}

func (s *ArticleService) toArticleResponse(ctx context.Context, articleID int64) (*dto.ArticleResponse, error) {
	article, err := s.repo.GetArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return s.mapToArticleResponse(article), nil
}

func (s *ArticleService) mapToArticleResponse(article *models.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Description: article.Description,
		Link:        article.Link,
		PhotoURL:    s.photos.PhotoURL(article.PhotoPath),
		Position:    article.Position,
		ChapterID:   article.ChapterID,
	}
}
