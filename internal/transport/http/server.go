package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"guide_catalog/internal/lib/logger/sl"
	"guide_catalog/internal/storage"
	"guide_catalog/internal/transport/http/dto"
	"guide_catalog/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"

	_ "guide_catalog/docs"
)

type ChapterService interface {
	CreateChapter(ctx context.Context, input dto.CreateChapterInput) (*dto.ChapterResponse, error)
	GetChapterByID(ctx context.Context, chapterID int64) (*dto.ChapterResponse, error)
	ListChapters(ctx context.Context) ([]dto.ChapterResponse, error)
	SearchChapters(ctx context.Context, title string) ([]dto.ChapterResponse, error)
	UpdateChapter(ctx context.Context, input dto.UpdateChapterInput) (*dto.ChapterResponse, error)
	DeleteChapter(ctx context.Context, chapterID int64) error
	ReorderChapters(ctx context.Context, items []dto.OrderItem) error
}

type ArticleService interface {
	CreateArticle(ctx context.Context, input dto.CreateArticleInput) (*dto.ArticleResponse, error)
	GetArticleByID(ctx context.Context, articleID int64) (*dto.ArticleResponse, error)
	ListArticlesByChapter(ctx context.Context, chapterID int64) ([]dto.ArticleResponse, error)
	SearchArticles(ctx context.Context, query string) ([]dto.ArticleResponse, error)
	UpdateArticle(ctx context.Context, input dto.UpdateArticleInput) (*dto.ArticleResponse, error)
	DeleteArticle(ctx context.Context, articleID int64) error
	ReorderArticles(ctx context.Context, items []dto.OrderItem) error
}

type TariffService interface {
	GetTariffByID(ctx context.Context, tariffID int64) (*dto.TariffResponse, error)
}

type Routers struct {
	log            *slog.Logger
	ChapterService ChapterService
	ArticleService ArticleService
	TariffService  TariffService
}

func NewRouter(log *slog.Logger, chapterService ChapterService, articleService ArticleService, tariffService TariffService) *Routers {
	return &Routers{
		log:            log,
		ChapterService: chapterService,
		ArticleService: articleService,
		TariffService:  tariffService,
	}
}

// photoFromForm возвращает файл из поля photo или nil, если файл не передан.
// Отсутствие файла ошибкой не считается.
func photoFromForm(c echo.Context) *multipart.FileHeader {
	file, err := c.FormFile("photo")
	if err != nil {
		return nil
	}
	return file
}

// isPhotoError отличает ошибки валидации обложки от внутренних
func isPhotoError(err error) bool {
	return errors.Is(err, storage.ErrInvalidFileType) ||
		errors.Is(err, storage.ErrInvalidAspectRatio) ||
		errors.Is(err, storage.ErrImageProcessing)
}

// CreateChapter godoc
// @Summary Создание раздела
// @Description Создает раздел с обложкой и ставит его в конец списка
// @Tags Разделы
// @Accept multipart/form-data
// @Produce json
// @Param X-Telegram-ID header string true "Telegram ID администратора"
// @Param title formData string true "Название раздела"
// @Param photo formData file true "Обложка 16:9 (png, jpg, jpeg, gif)"
// @Success 201 {object} dto.ChapterResponse "Созданный раздел"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные или обложка"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /chapters [post]
func (r *Routers) CreateChapter(c echo.Context) error {
	const op = "http.routers.CreateChapter"

	log := r.log.With(
		slog.String("op", op),
	)

	input := dto.CreateChapterInput{
		Title: c.FormValue("title"),
		Photo: photoFromForm(c),
	}

	if err := c.Validate(input); err != nil {
		log.Warn("invalid create chapter request", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Title and photo are required"))
	}

	chapter, err := r.ChapterService.CreateChapter(c.Request().Context(), input)
	if err != nil {
		if isPhotoError(err) {
			return c.JSON(http.StatusBadRequest,
				response.ErrorResponseWithDetails("invalid_photo", err.Error()))
		}
		log.Error("failed to create chapter", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("chapter created", slog.Int64("chapter_id", chapter.ID))

	return c.JSON(http.StatusCreated, chapter)
}

// GetChapter godoc
// @Summary Получение раздела по ID
// @Tags Разделы
// @Produce json
// @Param id path integer true "ID раздела"
// @Success 200 {object} dto.ChapterResponse "Раздел"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Раздел не найден"
// @Router /chapters/{id} [get]
func (r *Routers) GetChapter(c echo.Context) error {
	const op = "http.routers.GetChapter"

	log := r.log.With(
		slog.String("op", op),
	)

	chapterID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid chapter ID"))
	}

	chapter, err := r.ChapterService.GetChapterByID(c.Request().Context(), chapterID)
	if err != nil {
		if errors.Is(err, storage.ErrChapterNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "Chapter not found"))
		}
		log.Error("failed to get chapter", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, chapter)
}

// ListChapters godoc
// @Summary Список всех разделов
// @Description Возвращает разделы по возрастанию позиции
// @Tags Разделы
// @Produce json
// @Success 200 {array} dto.ChapterResponse "Список разделов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /chapters [get]
func (r *Routers) ListChapters(c echo.Context) error {
	const op = "http.routers.ListChapters"

	log := r.log.With(
		slog.String("op", op),
	)

	chapters, err := r.ChapterService.ListChapters(c.Request().Context())
	if err != nil {
		log.Error("failed to list chapters", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, chapters)
}

// SearchChapters godoc
// @Summary Поиск разделов по названию
// @Description Регистронезависимый поиск по подстроке
// @Tags Разделы
// @Produce json
// @Param title query string true "Подстрока названия"
// @Success 200 {array} dto.ChapterResponse "Найденные разделы"
// @Failure 400 {object} response.ErrorResponse "Пустой поисковый запрос"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /chapters/search [get]
func (r *Routers) SearchChapters(c echo.Context) error {
	const op = "http.routers.SearchChapters"

	log := r.log.With(
		slog.String("op", op),
	)

	title := c.QueryParam("title")
	if title == "" {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Search query 'title' is required"))
	}

	chapters, err := r.ChapterService.SearchChapters(c.Request().Context(), title)
	if err != nil {
		log.Error("failed to search chapters", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, chapters)
}

// UpdateChapter godoc
// @Summary Частичное обновление раздела
// @Description Меняет только переданные поля. ID раздела передается в теле формы.
// @Tags Разделы
// @Accept multipart/form-data
// @Produce json
// @Param X-Telegram-ID header string true "Telegram ID администратора"
// @Param id formData integer true "ID раздела"
// @Param title formData string false "Новое название"
// @Param order formData integer false "Новая позиция"
// @Param photo formData file false "Новая обложка 16:9"
// @Success 200 {object} dto.ChapterResponse "Обновленный раздел"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные или обложка"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Раздел не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /chapters [put]
func (r *Routers) UpdateChapter(c echo.Context) error {
	const op = "http.routers.UpdateChapter"

	log := r.log.With(
		slog.String("op", op),
	)

	params, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	idValue := params.Get("id")
	if idValue == "" {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Chapter ID is required in body"))
	}

	chapterID, err := strconv.ParseInt(idValue, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid chapter ID"))
	}

	input := dto.UpdateChapterInput{
		ID:    chapterID,
		Photo: photoFromForm(c),
	}

	if params.Has("title") {
		title := params.Get("title")
		input.Title = &title
	}
	if params.Has("order") {
		position, err := strconv.Atoi(params.Get("order"))
		if err != nil {
			return c.JSON(http.StatusBadRequest,
				response.ErrorResponseWithDetails("invalid_request", "Invalid order value"))
		}
		input.Position = &position
	}

	chapter, err := r.ChapterService.UpdateChapter(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrChapterNotFound):
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "Chapter not found"))
		case isPhotoError(err):
			return c.JSON(http.StatusBadRequest,
				response.ErrorResponseWithDetails("invalid_photo", err.Error()))
		default:
			log.Error("failed to update chapter", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	log.Info("chapter updated", slog.Int64("chapter_id", chapterID))

	return c.JSON(http.StatusOK, chapter)
}

// DeleteChapter godoc
// @Summary Удаление раздела
// @Description Удаляет раздел вместе со статьями и файлами обложек
// @Tags Разделы
// @Produce json
// @Param X-Telegram-ID header string true "Telegram ID администратора"
// @Param id path integer true "ID раздела"
// @Success 200 {object} response.Response "Раздел удален"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Раздел не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /chapters/{id} [delete]
func (r *Routers) DeleteChapter(c echo.Context) error {
	const op = "http.routers.DeleteChapter"

	log := r.log.With(
		slog.String("op", op),
	)

	chapterID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid chapter ID"))
	}

	if err := r.ChapterService.DeleteChapter(c.Request().Context(), chapterID); err != nil {
		if errors.Is(err, storage.ErrChapterNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "Chapter not found"))
		}
		log.Error("failed to delete chapter", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("chapter deleted", slog.Int64("chapter_id", chapterID))

	return c.JSON(http.StatusOK, response.MessageResponse("Chapter deleted successfully"))
}

// ReorderChapters godoc
// @Summary Массовое изменение порядка разделов
// @Description Применяет новые позиции целиком: либо все, либо ни одной
// @Tags Разделы
// @Accept json
// @Produce json
// @Param X-Telegram-ID header string true "Telegram ID администратора"
// @Param request body []dto.OrderItem true "Массив пар id и order"
// @Success 200 {object} response.Response "Порядок обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный формат данных"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Раздел не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /chapters/order [patch]
func (r *Routers) ReorderChapters(c echo.Context) error {
	const op = "http.routers.ReorderChapters"

	log := r.log.With(
		slog.String("op", op),
	)

	var items []dto.OrderItem
	if err := c.Bind(&items); err != nil {
		log.Warn("invalid reorder payload", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid data format. Expected a list of objects."))
	}
	if len(items) == 0 {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid data format. Expected a list of objects."))
	}

	if err := r.ChapterService.ReorderChapters(c.Request().Context(), items); err != nil {
		if errors.Is(err, storage.ErrChapterNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", err.Error()))
		}
		log.Error("failed to reorder chapters", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("chapters reordered", slog.Int("count", len(items)))

	return c.JSON(http.StatusOK, response.MessageResponse("Chapters order updated successfully"))
}

// ListChapterArticles godoc
// @Summary Статьи раздела
// @Description Возвращает статьи раздела по возрастанию позиции.
// @Description Для несуществующего раздела список пуст.
// @Tags Статьи
// @Produce json
// @Param id path integer true "ID раздела"
// @Success 200 {array} dto.ArticleResponse "Статьи раздела"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /chapters/{id}/articles [get]
func (r *Routers) ListChapterArticles(c echo.Context) error {
	const op = "http.routers.ListChapterArticles"

	log := r.log.With(
		slog.String("op", op),
	)

	chapterID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid chapter ID"))
	}

	articles, err := r.ArticleService.ListArticlesByChapter(c.Request().Context(), chapterID)
	if err != nil {
		log.Error("failed to list chapter articles", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, articles)
}

// CreateArticle godoc
// @Summary Создание статьи
// @Description Создает статью в конце списка своего раздела
// @Tags Статьи
// @Accept multipart/form-data
// @Produce json
// @Param X-Telegram-ID header string true "Telegram ID администратора"
// @Param title formData string true "Название статьи"
// @Param description formData string true "Описание"
// @Param link formData string true "Ссылка на материал"
// @Param chapter_id formData integer true "ID раздела"
// @Param photo formData file false "Обложка 16:9 (png, jpg, jpeg, gif)"
// @Success 201 {object} dto.ArticleResponse "Созданная статья"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные или обложка"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Раздел не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /articles [post]
func (r *Routers) CreateArticle(c echo.Context) error {
	const op = "http.routers.CreateArticle"

	log := r.log.With(
		slog.String("op", op),
	)

	title := c.FormValue("title")
	description := c.FormValue("description")
	link := c.FormValue("link")
	chapterIDValue := c.FormValue("chapter_id")

	if title == "" || description == "" || link == "" || chapterIDValue == "" {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Missing required fields"))
	}

	chapterID, err := strconv.ParseInt(chapterIDValue, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid chapter_id"))
	}

	input := dto.CreateArticleInput{
		Title:       title,
		Description: description,
		Link:        link,
		ChapterID:   chapterID,
		Photo:       photoFromForm(c),
	}

	if err := c.Validate(input); err != nil {
		log.Warn("invalid create article request", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	article, err := r.ArticleService.CreateArticle(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrChapterNotFound):
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", fmt.Sprintf("Chapter with id %d not found", chapterID)))
		case isPhotoError(err):
			return c.JSON(http.StatusBadRequest,
				response.ErrorResponseWithDetails("invalid_photo", err.Error()))
		default:
			log.Error("failed to create article", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	log.Info("article created", slog.Int64("article_id", article.ID))

	return c.JSON(http.StatusCreated, article)
}

// GetArticle godoc
// @Summary Получение статьи по ID
// @Tags Статьи
// @Produce json
// @Param id path integer true "ID статьи"
// @Success 200 {object} dto.ArticleResponse "Статья"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Статья не найдена"
// @Router /articles/{id} [get]
func (r *Routers) GetArticle(c echo.Context) error {
	const op = "http.routers.GetArticle"

	log := r.log.With(
		slog.String("op", op),
	)

	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid article ID"))
	}

	article, err := r.ArticleService.GetArticleByID(c.Request().Context(), articleID)
	if err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "Article not found"))
		}
		log.Error("failed to get article", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, article)
}

// SearchArticles godoc
// @Summary Поиск статей
// @Description Регистронезависимый поиск по названию и описанию
// @Tags Статьи
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Success 200 {array} dto.ArticleResponse "Найденные статьи"
// @Failure 400 {object} response.ErrorResponse "Пустой поисковый запрос"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /articles/search [get]
func (r *Routers) SearchArticles(c echo.Context) error {
	const op = "http.routers.SearchArticles"

	log := r.log.With(
		slog.String("op", op),
	)

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Search query 'q' is required"))
	}

	articles, err := r.ArticleService.SearchArticles(c.Request().Context(), query)
	if err != nil {
		log.Error("failed to search articles", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, articles)
}

// UpdateArticle godoc
// @Summary Частичное обновление статьи
// @Description Меняет только переданные поля. ID статьи передается в теле формы.
// @Tags Статьи
// @Accept multipart/form-data
// @Produce json
// @Param X-Telegram-ID header string true "Telegram ID администратора"
// @Param id formData integer true "ID статьи"
// @Param title formData string false "Новое название"
// @Param description formData string false "Новое описание"
// @Param link formData string false "Новая ссылка"
// @Param order formData integer false "Новая позиция"
// @Param chapter_id formData integer false "Новый раздел"
// @Param photo formData file false "Новая обложка 16:9"
// @Success 200 {object} dto.ArticleResponse "Обновленная статья"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные или обложка"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Статья не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /articles [put]
func (r *Routers) UpdateArticle(c echo.Context) error {
	const op = "http.routers.UpdateArticle"

	log := r.log.With(
		slog.String("op", op),
	)

	params, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	idValue := params.Get("id")
	if idValue == "" {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Article ID is required in body"))
	}

	articleID, err := strconv.ParseInt(idValue, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid article ID"))
	}

	input := dto.UpdateArticleInput{
		ID:    articleID,
		Photo: photoFromForm(c),
	}

	if params.Has("title") {
		title := params.Get("title")
		input.Title = &title
	}
	if params.Has("description") {
		description := params.Get("description")
		input.Description = &description
	}
	if params.Has("link") {
		link := params.Get("link")
		input.Link = &link
	}
	if params.Has("order") {
		position, err := strconv.Atoi(params.Get("order"))
		if err != nil {
			return c.JSON(http.StatusBadRequest,
				response.ErrorResponseWithDetails("invalid_request", "Invalid order value"))
		}
		input.Position = &position
	}
	if params.Has("chapter_id") {
		chapterID, err := strconv.ParseInt(params.Get("chapter_id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest,
				response.ErrorResponseWithDetails("invalid_request", "Invalid chapter_id"))
		}
		input.ChapterID = &chapterID
	}

	article, err := r.ArticleService.UpdateArticle(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrArticleNotFound):
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "Article not found"))
		case isPhotoError(err):
			return c.JSON(http.StatusBadRequest,
				response.ErrorResponseWithDetails("invalid_photo", err.Error()))
		default:
			log.Error("failed to update article", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	log.Info("article updated", slog.Int64("article_id", articleID))

	return c.JSON(http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Удаление статьи
// @Description Удаляет статью и файл её обложки
// @Tags Статьи
// @Produce json
// @Param X-Telegram-ID header string true "Telegram ID администратора"
// @Param id path integer true "ID статьи"
// @Success 200 {object} response.Response "Статья удалена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Статья не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /articles/{id} [delete]
func (r *Routers) DeleteArticle(c echo.Context) error {
	const op = "http.routers.DeleteArticle"

	log := r.log.With(
		slog.String("op", op),
	)

	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid article ID"))
	}

	if err := r.ArticleService.DeleteArticle(c.Request().Context(), articleID); err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "Article not found"))
		}
		log.Error("failed to delete article", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("article deleted", slog.Int64("article_id", articleID))

	return c.JSON(http.StatusOK, response.MessageResponse("Article deleted successfully"))
}

// ReorderArticles godoc
// @Summary Массовое изменение порядка статей
// @Description Применяет новые позиции целиком: либо все, либо ни одной
// @Tags Статьи
// @Accept json
// @Produce json
// @Param X-Telegram-ID header string true "Telegram ID администратора"
// @Param request body []dto.OrderItem true "Массив пар id и order"
// @Success 200 {object} response.Response "Порядок обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный формат данных"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Статья не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /articles/order [patch]
func (r *Routers) ReorderArticles(c echo.Context) error {
	const op = "http.routers.ReorderArticles"

	log := r.log.With(
		slog.String("op", op),
	)

	var items []dto.OrderItem
	if err := c.Bind(&items); err != nil {
		log.Warn("invalid reorder payload", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid data format. Expected a list of objects."))
	}
	if len(items) == 0 {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid data format. Expected a list of objects."))
	}

	if err := r.ArticleService.ReorderArticles(c.Request().Context(), items); err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", err.Error()))
		}
		log.Error("failed to reorder articles", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("articles reordered", slog.Int("count", len(items)))

	return c.JSON(http.StatusOK, response.MessageResponse("Articles order updated successfully"))
}

// GetTariff godoc
// @Summary Получение тарифа по ID
// @Description Возвращает тариф, только если он активен
// @Tags Тарифы
// @Produce json
// @Param id path integer true "ID тарифа"
// @Success 200 {object} dto.TariffResponse "Тариф"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Активный тариф не найден"
// @Router /tariffs/{id} [get]
func (r *Routers) GetTariff(c echo.Context) error {
	const op = "http.routers.GetTariff"

	log := r.log.With(
		slog.String("op", op),
	)

	tariffID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "Invalid tariff ID"))
	}

	tariff, err := r.TariffService.GetTariffByID(c.Request().Context(), tariffID)
	if err != nil {
		if errors.Is(err, storage.ErrTariffNotFound) {
			return c.JSON(http.StatusNotFound,
				response.ErrorResponseWithDetails("not_found", "Active tariff not found"))
		}
		log.Error("failed to get tariff", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, tariff)
}
