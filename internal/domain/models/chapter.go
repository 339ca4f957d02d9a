package models

// Chapter представляет главу каталога. Порядок отображения задаёт position,
// наружу поле сериализуется как "order".
type Chapter struct {
	ID        int64   `db:"id" json:"id"`
	Title     string  `db:"title" json:"title"`
	PhotoPath *string `db:"photo_path" json:"photo_path,omitempty"`
	Position  int     `db:"position" json:"order"`
}

// OrderUpdate пара id/порядок для массового изменения позиций
type OrderUpdate struct {
	ID       int64 `json:"id"`
	Position int   `json:"order"`
}
