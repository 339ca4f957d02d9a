package dto

import "mime/multipart"

// CreateChapterInput собирается из multipart-формы.
// Обложка при создании раздела обязательна.
type CreateChapterInput struct {
	Title string                `form:"title" validate:"required,max=250"`
	Photo *multipart.FileHeader `json:"-" form:"photo" validate:"required"`
}

// UpdateChapterInput описывает частичное обновление: меняются только переданные поля.
type UpdateChapterInput struct {
	ID       int64                 `form:"id" validate:"required"`
	Title    *string               `form:"title" validate:"omitempty,max=250"`
	Position *int                  `form:"order"`
	Photo    *multipart.FileHeader `json:"-" form:"photo"`
}

type ChapterResponse struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	PhotoURL *string `json:"photo_url"`
	Position int     `json:"order"`
}

// OrderItem задает новую позицию одной записи при массовом изменении порядка
type OrderItem struct {
	ID       int64 `json:"id"`
	Position int   `json:"order"`
}
