package services

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"guide_catalog/internal/lib/logger/sl"
	"guide_catalog/internal/storage"
	filestorage "guide_catalog/internal/storage/filestorage"

	"github.com/google/uuid"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Требуемое соотношение сторон обложки (16:9) с погрешностью 5%
const (
	aspectRatio          = 16.0 / 9.0
	aspectRatioTolerance = 0.05
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type PhotoService struct {
	log     *slog.Logger
	storage filestorage.FileStorage
}

func NewPhotoService(log *slog.Logger, storage filestorage.FileStorage) *PhotoService {
	return &PhotoService{log: log, storage: storage}
}

// SavePhoto сохраняет обложку и проверяет расширение и соотношение сторон.
// Файл сначала пишется на диск, затем проверяется; при любой ошибке
// он удаляется, чтобы в хранилище не оставалось мусора.
// nil-файл не считается ошибкой: обложка не везде обязательна.
func (s *PhotoService) SavePhoto(ctx context.Context, file *multipart.FileHeader) (string, error) {
	const op = "photo_service.SavePhoto"

	if file == nil {
		return "", nil
	}

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", file.Filename),
	)

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		log.Warn("disallowed file extension", slog.String("ext", ext))
		return "", fmt.Errorf("%w. Allowed types: png, jpg, jpeg, gif", storage.ErrInvalidFileType)
	}

	fileName := uuid.New().String() + ext

	savedPath, size, err := s.storage.Save(ctx, file, fileName)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))
		return "", fmt.Errorf("%w: %v", storage.ErrImageProcessing, err)
	}

	width, height, err := s.imageSize(savedPath)
	if err != nil {
		s.removeInvalidFile(ctx, savedPath)
		log.Warn("failed to decode image", sl.Err(err))
		return "", fmt.Errorf("%w: %v", storage.ErrImageProcessing, err)
	}

	if height == 0 {
		s.removeInvalidFile(ctx, savedPath)
		return "", fmt.Errorf("%w: image height cannot be zero", storage.ErrImageProcessing)
	}

	actualRatio := float64(width) / float64(height)
	lowerBound := aspectRatio * (1 - aspectRatioTolerance)
	upperBound := aspectRatio * (1 + aspectRatioTolerance)

	if actualRatio < lowerBound || actualRatio > upperBound {
		s.removeInvalidFile(ctx, savedPath)
		log.Warn("aspect ratio out of bounds",
			slog.Int("width", width),
			slog.Int("height", height),
		)
		return "", fmt.Errorf("%w. Required: ~%.2f, found: %.2f", storage.ErrInvalidAspectRatio, aspectRatio, actualRatio)
	}

	log.Info("photo saved",
		slog.String("path", savedPath),
		slog.Int64("size", size),
	)

	return savedPath, nil
}

// DeletePhoto удаляет файл обложки с диска.
// Ошибка удаления только логируется: запись в БД уже изменена,
// и падать из-за осиротевшего файла нет смысла.
func (s *PhotoService) DeletePhoto(ctx context.Context, path string) {
	const op = "photo_service.DeletePhoto"

	if path == "" {
		return
	}

	if err := s.storage.Delete(ctx, path); err != nil {
		s.log.Warn("failed to delete photo",
			slog.String("op", op),
			slog.String("path", path),
			sl.Err(err),
		)
	}
}

// PhotoURL собирает публичный URL обложки из базового адреса и имени файла
func (s *PhotoService) PhotoURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}

	url := s.storage.BaseURL() + *path
	return &url
}

func (s *PhotoService) imageSize(path string) (int, int, error) {
	f, err := os.Open(s.storage.GetFullPath(path))
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}

	return cfg.Width, cfg.Height, nil
}

func (s *PhotoService) removeInvalidFile(ctx context.Context, path string) {
	if err := s.storage.Delete(ctx, path); err != nil {
		s.log.Warn("failed to remove invalid file",
			slog.String("path", path),
			sl.Err(err),
		)
	}
}
