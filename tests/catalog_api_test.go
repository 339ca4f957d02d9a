package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"guide_catalog/internal/transport/http/dto"
	"guide_catalog/internal/transport/http/dto/response"
	"guide_catalog/tests/suite"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapterLifecycle_HappyPath(t *testing.T) {
	_, st := suite.New(t)

	first := createChapter(t, st, "Тренировки для начинающих")
	require.Equal(t, 1, first.Position)
	require.NotNil(t, first.PhotoURL)
	require.Contains(t, *first.PhotoURL, st.Cfg.FileStorage.BaseURL)

	second := createChapter(t, st, "Питание")
	require.Equal(t, 2, second.Position)

	resp := doRequest(t, st, http.MethodGet, "/chapters", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var chapters []dto.ChapterResponse
	decodeJSON(t, resp, &chapters)
	require.Len(t, chapters, 2)
	assert.Equal(t, first.ID, chapters[0].ID)
	assert.Equal(t, second.ID, chapters[1].ID)

	resp = doRequest(t, st, http.MethodGet, fmt.Sprintf("/chapters/%d", first.ID), "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.ChapterResponse
	decodeJSON(t, resp, &got)
	assert.Equal(t, first.Title, got.Title)
	assert.Equal(t, first.Position, got.Position)

	body, contentType := multipartForm(t, map[string]string{
		"id":    fmt.Sprintf("%d", first.ID),
		"title": "Базовые тренировки",
	}, "", nil)
	resp = doRequest(t, st, http.MethodPut, "/chapters", st.AdminID, body, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.ChapterResponse
	decodeJSON(t, resp, &updated)
	assert.Equal(t, "Базовые тренировки", updated.Title)
	assert.Equal(t, first.Position, updated.Position)

	resp = doRequest(t, st, http.MethodGet, "/chapters/search?title="+url.QueryEscape("Базовые"), "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var found []dto.ChapterResponse
	decodeJSON(t, resp, &found)
	require.Len(t, found, 1)
	assert.Equal(t, first.ID, found[0].ID)

	resp = doRequest(t, st, http.MethodDelete, fmt.Sprintf("/chapters/%d", first.ID), st.AdminID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted response.Response
	decodeJSON(t, resp, &deleted)
	assert.Equal(t, "Chapter deleted successfully", deleted.Message)

	resp = doRequest(t, st, http.MethodGet, fmt.Sprintf("/chapters/%d", first.ID), "", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp response.ErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Equal(t, "Chapter not found", errResp.Details)
}

func TestArticleLifecycle_HappyPath(t *testing.T) {
	_, st := suite.New(t)

	chapter := createChapter(t, st, "Техника")
	other := createChapter(t, st, "Восстановление")

	firstArticle := createArticle(t, st, chapter.ID, "Разминка перед тренировкой")
	require.Equal(t, 1, firstArticle.Position)
	require.Equal(t, chapter.ID, firstArticle.ChapterID)

	secondArticle := createArticle(t, st, chapter.ID, "Техника приседаний")
	require.Equal(t, 2, secondArticle.Position)

	resp := doRequest(t, st, http.MethodGet, fmt.Sprintf("/chapters/%d/articles", chapter.ID), "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var articles []dto.ArticleResponse
	decodeJSON(t, resp, &articles)
	require.Len(t, articles, 2)
	assert.Equal(t, firstArticle.ID, articles[0].ID)
	assert.Equal(t, secondArticle.ID, articles[1].ID)

	resp = doRequest(t, st, http.MethodGet, fmt.Sprintf("/articles/%d", firstArticle.ID), "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.ArticleResponse
	decodeJSON(t, resp, &got)
	assert.Equal(t, firstArticle.Title, got.Title)
	assert.Equal(t, firstArticle.Link, got.Link)

	resp = doRequest(t, st, http.MethodGet, "/articles/search?q="+url.QueryEscape("Техника"), "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var foundArticles []dto.ArticleResponse
	decodeJSON(t, resp, &foundArticles)
	require.Len(t, foundArticles, 1)
	assert.Equal(t, secondArticle.ID, foundArticles[0].ID)

	// перенос статьи в другой раздел
	body, contentType := multipartForm(t, map[string]string{
		"id":         fmt.Sprintf("%d", secondArticle.ID),
		"chapter_id": fmt.Sprintf("%d", other.ID),
	}, "", nil)
	resp = doRequest(t, st, http.MethodPut, "/articles", st.AdminID, body, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var moved dto.ArticleResponse
	decodeJSON(t, resp, &moved)
	assert.Equal(t, other.ID, moved.ChapterID)

	resp = doRequest(t, st, http.MethodGet, fmt.Sprintf("/chapters/%d/articles", other.ID), "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var otherArticles []dto.ArticleResponse
	decodeJSON(t, resp, &otherArticles)
	require.Len(t, otherArticles, 1)
	assert.Equal(t, secondArticle.ID, otherArticles[0].ID)

	resp = doRequest(t, st, http.MethodDelete, fmt.Sprintf("/articles/%d", firstArticle.ID), st.AdminID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted response.Response
	decodeJSON(t, resp, &deleted)
	assert.Equal(t, "Article deleted successfully", deleted.Message)

	resp = doRequest(t, st, http.MethodGet, fmt.Sprintf("/chapters/%d/articles", chapter.ID), "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decodeJSON(t, resp, &articles)
	require.Empty(t, articles)
}

func TestReorderChapters_AppliedToListing(t *testing.T) {
	_, st := suite.New(t)

	first := createChapter(t, st, gofakeit.BookTitle())
	second := createChapter(t, st, gofakeit.BookTitle())
	third := createChapter(t, st, gofakeit.BookTitle())

	payload := fmt.Sprintf(
		`[{"id":%d,"order":3},{"id":%d,"order":1},{"id":%d,"order":2}]`,
		first.ID, second.ID, third.ID,
	)
	resp := doRequest(t, st, http.MethodPatch, "/chapters/order", st.AdminID, strings.NewReader(payload), "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reordered response.Response
	decodeJSON(t, resp, &reordered)
	assert.Equal(t, "Chapters order updated successfully", reordered.Message)

	resp = doRequest(t, st, http.MethodGet, "/chapters", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var chapters []dto.ChapterResponse
	decodeJSON(t, resp, &chapters)
	require.Len(t, chapters, 3)
	assert.Equal(t, second.ID, chapters[0].ID)
	assert.Equal(t, third.ID, chapters[1].ID)
	assert.Equal(t, first.ID, chapters[2].ID)

	// незнакомый id откатывает всю пачку
	payload = fmt.Sprintf(`[{"id":%d,"order":2},{"id":999999,"order":1}]`, first.ID)
	resp = doRequest(t, st, http.MethodPatch, "/chapters/order", st.AdminID, strings.NewReader(payload), "application/json")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp response.ErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Contains(t, errResp.Details, "chapter 999999")

	resp = doRequest(t, st, http.MethodGet, "/chapters", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decodeJSON(t, resp, &chapters)
	require.Len(t, chapters, 3)
	assert.Equal(t, second.ID, chapters[0].ID)
}

func TestMutationsRequireAdmin(t *testing.T) {
	_, st := suite.New(t)

	body, contentType := multipartForm(t, map[string]string{"title": "Скрытый раздел"}, "cover.png", pngPayload(t, 160, 90))

	resp := doRequest(t, st, http.MethodPost, "/chapters", "", body, contentType)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var errResp response.ErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Equal(t, "Forbidden: Admin access required", errResp.Details)

	body, contentType = multipartForm(t, map[string]string{"title": "Скрытый раздел"}, "cover.png", pngPayload(t, 160, 90))

	resp = doRequest(t, st, http.MethodPost, "/chapters", "999999999", body, contentType)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, st, http.MethodDelete, "/chapters/1", "", nil, "")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, st, http.MethodPatch, "/chapters/order", "", strings.NewReader(`[{"id":1,"order":1}]`), "application/json")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// чтение открыто всем
	resp = doRequest(t, st, http.MethodGet, "/chapters", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var chapters []dto.ChapterResponse
	decodeJSON(t, resp, &chapters)
	require.Empty(t, chapters)
}

func TestCoverValidation(t *testing.T) {
	_, st := suite.New(t)

	t.Run("disallowed extension", func(t *testing.T) {
		body, contentType := multipartForm(t, map[string]string{"title": "Обложка bmp"}, "cover.bmp", pngPayload(t, 160, 90))

		resp := doRequest(t, st, http.MethodPost, "/chapters", st.AdminID, body, contentType)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var errResp response.ErrorResponse
		decodeJSON(t, resp, &errResp)
		assert.Contains(t, errResp.Details, "invalid file type")
	})

	t.Run("square image is rejected", func(t *testing.T) {
		body, contentType := multipartForm(t, map[string]string{"title": "Квадратная обложка"}, "square.png", pngPayload(t, 100, 100))

		resp := doRequest(t, st, http.MethodPost, "/chapters", st.AdminID, body, contentType)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var errResp response.ErrorResponse
		decodeJSON(t, resp, &errResp)
		assert.Contains(t, errResp.Details, "invalid aspect ratio")
	})

	t.Run("ratio inside the tolerance window passes", func(t *testing.T) {
		// 1.73 при допуске 5% от 16:9 еще проходит
		body, contentType := multipartForm(t, map[string]string{"title": "Почти 16 на 9"}, "wide.png", pngPayload(t, 173, 100))

		resp := doRequest(t, st, http.MethodPost, "/chapters", st.AdminID, body, contentType)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var chapter dto.ChapterResponse
		decodeJSON(t, resp, &chapter)
		require.NotNil(t, chapter.PhotoURL)
	})

	t.Run("rejected uploads do not create chapters", func(t *testing.T) {
		resp := doRequest(t, st, http.MethodGet, "/chapters", "", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var chapters []dto.ChapterResponse
		decodeJSON(t, resp, &chapters)
		require.Len(t, chapters, 1)
	})
}

func TestTariffLookup(t *testing.T) {
	ctx, st := suite.New(t)

	var activeID, inactiveID int64
	err := st.DB.QueryRow(ctx,
		`INSERT INTO tariffs (name, duration_days, price, currency, is_active)
		 VALUES ('Месячный', 30, 990.00, 'RUB', TRUE) RETURNING id`,
	).Scan(&activeID)
	require.NoError(t, err)

	err = st.DB.QueryRow(ctx,
		`INSERT INTO tariffs (name, duration_days, price, currency, is_active)
		 VALUES ('Архивный', 90, 2490.00, 'RUB', FALSE) RETURNING id`,
	).Scan(&inactiveID)
	require.NoError(t, err)

	resp := doRequest(t, st, http.MethodGet, fmt.Sprintf("/tariffs/%d", activeID), "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tariff dto.TariffResponse
	decodeJSON(t, resp, &tariff)
	assert.Equal(t, "Месячный", tariff.Name)
	assert.Equal(t, 30, tariff.DurationDays)
	assert.InDelta(t, 990.0, tariff.Price, 0.001)
	assert.Equal(t, "RUB", tariff.Currency)
	assert.True(t, tariff.IsActive)

	// неактивный тариф неотличим от несуществующего
	resp = doRequest(t, st, http.MethodGet, fmt.Sprintf("/tariffs/%d", inactiveID), "", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp response.ErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Equal(t, "Active tariff not found", errResp.Details)

	resp = doRequest(t, st, http.MethodGet, "/tariffs/999999", "", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// pngPayload кодирует однотонный PNG заданных размеров
func pngPayload(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func multipartForm(t *testing.T, fields map[string]string, photoName string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if photoName != "" {
		part, err := writer.CreateFormFile("photo", photoName)
		require.NoError(t, err)
		_, err = part.Write(photo)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func doRequest(t *testing.T, st *suite.Suite, method, path, telegramID string, body io.Reader, contentType string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, st.Server.URL+path, body)
	require.NoError(t, err)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if telegramID != "" {
		req.Header.Set("X-Telegram-ID", telegramID)
	}

	resp, err := st.Server.Client().Do(req)
	require.NoError(t, err)

	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func createChapter(t *testing.T, st *suite.Suite, title string) dto.ChapterResponse {
	t.Helper()

	body, contentType := multipartForm(t, map[string]string{"title": title}, "cover.png", pngPayload(t, 160, 90))

	resp := doRequest(t, st, http.MethodPost, "/chapters", st.AdminID, body, contentType)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var chapter dto.ChapterResponse
	decodeJSON(t, resp, &chapter)

	return chapter
}

func createArticle(t *testing.T, st *suite.Suite, chapterID int64, title string) dto.ArticleResponse {
	t.Helper()

	body, contentType := multipartForm(t, map[string]string{
		"title":       title,
		"description": gofakeit.Sentence(8),
		"link":        gofakeit.URL(),
		"chapter_id":  fmt.Sprintf("%d", chapterID),
	}, "", nil)

	resp := doRequest(t, st, http.MethodPost, "/articles", st.AdminID, body, contentType)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var article dto.ArticleResponse
	decodeJSON(t, resp, &article)

	return article
}
