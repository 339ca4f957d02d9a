package app

import (
	"context"

	"log/slog"

	httpapp "guide_catalog/internal/app/http"
	"guide_catalog/internal/config"
	"guide_catalog/internal/repository"
	article "guide_catalog/internal/services/article_service"
	chapter "guide_catalog/internal/services/chapter_service"
	photo "guide_catalog/internal/services/photo_service"
	tariff "guide_catalog/internal/services/tariff_service"
	filestorage "guide_catalog/internal/storage/filestorage"
	httprouters "guide_catalog/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Repo       *repository.Repository
}

func New(log *slog.Logger, cfg *config.Config) *App {
	repo, err := repository.NewRepository(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		panic(err)
	}

	photoService := photo.NewPhotoService(log, fileStorage)
	chapterService := chapter.NewChapterService(log, repo.Chapter, photoService)
	articleService := article.NewArticleService(log, repo.Article, photoService)
	tariffService := tariff.NewTariffService(log, repo.Tariff)

	routers := httprouters.NewRouter(log, chapterService, articleService, tariffService)

	server := httpapp.New(
		log,
		cfg.Admin.TelegramIDs,
		cfg.HTTP.Host,
		cfg.HTTP.Port,
		cfg.FileStorage.MaxUploadSize,
		cfg.FileStorage.BaseDir,
		routers,
	)

	return &App{
		HTTPServer: server,
		Repo:       repo,
	}
}
