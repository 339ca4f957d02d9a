package models

// Article принадлежит ровно одной главе, position считается внутри главы
type Article struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	Link        string  `db:"link" json:"link"`
	PhotoPath   *string `db:"photo_path" json:"photo_path,omitempty"`
	Position    int     `db:"position" json:"order"`
	ChapterID   int64   `db:"chapter_id" json:"chapter_id"`
}
