package storage

import "errors"

var (
	ErrChapterNotFound = errors.New("chapter not found")
	ErrArticleNotFound = errors.New("article not found")
	ErrTariffNotFound  = errors.New("tariff not found")
)

var (
	ErrInvalidFileType    = errors.New("invalid file type")
	ErrInvalidAspectRatio = errors.New("invalid aspect ratio")
	ErrImageProcessing    = errors.New("error processing image")
)
