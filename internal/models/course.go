package models

// Course представляет курс из фиксированного каталога.
// Коллекция курсов задаётся при старте процесса и никогда не изменяется.
type Course struct {
	ID              string  `json:"id"`              // Уникальный идентификатор курса
	Title           string  `json:"title"`           // Название
	Description     string  `json:"description"`     // Краткое описание для каталога
	FullDescription string  `json:"fullDescription"` // Полное описание для страницы курса
	Price           float64 `json:"price"`           // Цена, ноль означает бесплатный курс
	Image           string  `json:"image"`           // URI обложки
}
