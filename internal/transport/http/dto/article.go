package dto

import "mime/multipart"

// CreateArticleInput собирается из multipart-формы.
// Обложка опциональна, остальные поля обязательны.
type CreateArticleInput struct {
	Title       string                `form:"title" validate:"required,max=250"`
	Description string                `form:"description" validate:"required"`
	Link        string                `form:"link" validate:"required,max=500"`
	ChapterID   int64                 `form:"chapter_id" validate:"required"`
	Photo       *multipart.FileHeader `json:"-" form:"photo"`
}

// UpdateArticleInput описывает частичное обновление: меняются только переданные поля.
type UpdateArticleInput struct {
	ID          int64                 `form:"id" validate:"required"`
	Title       *string               `form:"title" validate:"omitempty,max=250"`
	Description *string               `form:"description"`
	Link        *string               `form:"link" validate:"omitempty,max=500"`
	Position    *int                  `form:"order"`
	ChapterID   *int64                `form:"chapter_id"`
	Photo       *multipart.FileHeader `json:"-" form:"photo"`
}

type ArticleResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	PhotoURL    *string `json:"photo_url"`
	Position    int     `json:"order"`
	ChapterID   int64   `json:"chapter_id"`
}
