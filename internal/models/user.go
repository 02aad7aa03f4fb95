// Package models содержит доменные структуры каталога курсов:
// пользователя, курс, подписку и снимок текущей сессии.
package models

// User представляет учётную запись пользователя.
// Пароль хранится и сравнивается в открытом виде: коллекция пользователей
// статична, реальная аутентификация в системе отсутствует.
type User struct {
	ID       string `json:"id"`       // Уникальный идентификатор пользователя
	Name     string `json:"name"`     // Отображаемое имя
	Email    string `json:"email"`    // Электронная почта, ключ для поиска
	Password string `json:"password"` // Пароль в открытом виде
}
