package sl

import "log/slog"

// Err возвращает атрибут с текстом ошибки для структурированных логов
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
