package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"

	"guide_catalog/internal/domain/models"
	"guide_catalog/internal/lib/logger/sl"
	"guide_catalog/internal/repository"
	"guide_catalog/internal/transport/http/dto"
)

// PhotoStorage отвечает за файлы обложек: валидацию, запись и удаление
type PhotoStorage interface {
	SavePhoto(ctx context.Context, file *multipart.FileHeader) (string, error)
	DeletePhoto(ctx context.Context, path string)
	PhotoURL(path *string) *string
}

type ChapterService struct {
	log    *slog.Logger
	repo   repository.ChapterRepository
	photos PhotoStorage
}

func NewChapterService(log *slog.Logger, repo repository.ChapterRepository, photos PhotoStorage) *ChapterService {
	return &ChapterService{log: log, repo: repo, photos: photos}
}

// CreateChapter создает раздел с обязательной обложкой.
// Раздел встает в конец списка, позицию выбирает репозиторий.
func (s *ChapterService) CreateChapter(ctx context.Context, input dto.CreateChapterInput) (*dto.ChapterResponse, error) {
	const op = "chapter_service.CreateChapter"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", input.Title),
	)

	log.Info("creating new chapter")

	if input.Title == "" {
		log.Error("chapter title is required")
		return nil, fmt.Errorf("chapter title is required")
	}
	if input.Photo == nil {
		log.Error("chapter photo is required")
		return nil, fmt.Errorf("chapter photo is required")
	}

	photoPath, err := s.photos.SavePhoto(ctx, input.Photo)
	if err != nil {
		log.Warn("photo rejected", sl.Err(err))
		return nil, err
	}

	id, err := s.repo.SaveChapter(ctx, models.Chapter{
		Title:     input.Title,
		PhotoPath: &photoPath,
	})
	if err != nil {
		// Запись не создана, файл обложки больше никому не нужен
		s.photos.DeletePhoto(ctx, photoPath)
		log.Error("failed to save chapter", sl.Err(err))
		return nil, fmt.Errorf("failed to save chapter: %w", err)
	}

	log.Info("chapter created", slog.Int64("chapter_id", id))
	return s.toChapterResponse(ctx, id)
}

// GetChapterByID возвращает раздел по ID
func (s *ChapterService) GetChapterByID(ctx context.Context, chapterID int64) (*dto.ChapterResponse, error) {
	const op = "chapter_service.GetChapterByID"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("chapter_id", chapterID),
	)

	chapter, err := s.repo.GetChapterByID(ctx, chapterID)
	if err != nil {
		log.Warn("failed to get chapter", sl.Err(err))
		return nil, err
	}

	return s.mapToChapterResponse(chapter), nil
}

// ListChapters возвращает все разделы по возрастанию позиции
func (s *ChapterService) ListChapters(ctx context.Context) ([]dto.ChapterResponse, error) {
	const op = "chapter_service.ListChapters"
	log := s.log.With(slog.String("op", op))

	chapters, err := s.repo.GetChapters(ctx)
	if err != nil {
		log.Error("failed to list chapters", sl.Err(err))
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}

	response := make([]dto.ChapterResponse, 0, len(chapters))
	for _, chapter := range chapters {
		response = append(response, *s.mapToChapterResponse(&chapter))
	}

	log.Debug("chapters listed", slog.Int("count", len(response)))
	return response, nil
}

// SearchChapters ищет разделы по подстроке названия
func (s *ChapterService) SearchChapters(ctx context.Context, title string) ([]dto.ChapterResponse, error) {
	const op = "chapter_service.SearchChapters"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", title),
	)

	chapters, err := s.repo.SearchChapters(ctx, title)
	if err != nil {
		log.Error("failed to search chapters", sl.Err(err))
		return nil, fmt.Errorf("failed to search chapters: %w", err)
	}

	response := make([]dto.ChapterResponse, 0, len(chapters))
	for _, chapter := range chapters {
		response = append(response, *s.mapToChapterResponse(&chapter))
	}

	return response, nil
}

// UpdateChapter обновляет только переданные поля.
// Новая обложка сначала проходит валидацию, и только после успешного
// обновления записи старый файл удаляется с диска.
func (s *ChapterService) UpdateChapter(ctx context.Context, input dto.UpdateChapterInput) (*dto.ChapterResponse, error) {
	const op = "chapter_service.UpdateChapter"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("chapter_id", input.ID),
	)

	log.Info("updating chapter")

	existing, err := s.repo.GetChapterByID(ctx, input.ID)
	if err != nil {
		log.Warn("failed to get chapter", sl.Err(err))
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Position != nil {
		updates["position"] = *input.Position
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

	// Пустое обновление не ошибка: вернем раздел как есть
	if len(updates) == 0 {
		return s.mapToChapterResponse(existing), nil
	}

	if err := s.repo.UpdateChapterFields(ctx, input.ID, updates); err != nil {
		if newPhotoPath != "" {
			s.photos.DeletePhoto(ctx, newPhotoPath)
		}
		log.Error("failed to update chapter", sl.Err(err))
		return nil, err
	}

	if newPhotoPath != "" && existing.PhotoPath != nil {
		s.photos.DeletePhoto(ctx, *existing.PhotoPath)
	}

	log.Info("chapter updated")
	return s.toChapterResponse(ctx, input.ID)
}

// DeleteChapter удаляет раздел вместе со статьями и файлами их обложек
func (s *ChapterService) DeleteChapter(ctx context.Context, chapterID int64) error {
	const op = "chapter_service.DeleteChapter"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("chapter_id", chapterID),
	)

	log.Info("deleting chapter")

	photoPaths, err := s.repo.DeleteChapter(ctx, chapterID)
	if err != nil {
		log.Warn("failed to delete chapter", sl.Err(err))
		return err
	}

	// Строки уже удалены, файлы чистим по принципу best effort
	for _, path := range photoPaths {
		s.photos.DeletePhoto(ctx, path)
	}

	log.Info("chapter deleted", slog.Int("photos_removed", len(photoPaths)))
	return nil
}

// ReorderChapters массово переставляет разделы.
// Либо применяются все позиции, либо ни одной.
func (s *ChapterService) ReorderChapters(ctx context.Context, items []dto.OrderItem) error {
	const op = "chapter_service.ReorderChapters"
	log := s.log.With(
		slog.String("op", op),
		slog.Int("count", len(items)),
	)

	log.Info("reordering chapters")

	updates := make([]models.OrderUpdate, 0, len(items))
	for _, item := range items {
		updates = append(updates, models.OrderUpdate{
			ID:       item.ID,
			Position: item.Position,
		})
	}

	if err := s.repo.UpdateChaptersOrder(ctx, updates); err != nil {
		log.Warn("failed to reorder chapters", sl.Err(err))
		return err
	}

	log.Info("chapters reordered")
	return nil
}

func (s *ChapterService) toChapterResponse(ctx context.Context, chapterID int64) (*dto.ChapterResponse, error) {
	chapter, err := s.repo.GetChapterByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	return s.mapToChapterResponse(chapter), nil
}

func (s *ChapterService) mapToChapterResponse(chapter *models.Chapter) *dto.ChapterResponse {
	return &dto.ChapterResponse{
		ID:       chapter.ID,
		Title:    chapter.Title,
		PhotoURL: s.photos.PhotoURL(chapter.PhotoPath),
		Position: chapter.Position,
	}
}
