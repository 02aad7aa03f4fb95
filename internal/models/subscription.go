package models

import "time"

// Subscription — запись о покупке курса пользователем.
// Создаётся ровно один раз при успешной покупке и далее не изменяется
// и не удаляется. PricePaid фиксирует фактически уплаченную цену
// с учётом применённого промокода.
type Subscription struct {
	ID           string    `json:"id"`           // Уникальный идентификатор записи
	UserID       string    `json:"userId"`       // Идентификатор владельца
	CourseID     string    `json:"courseId"`     // Идентификатор купленного курса
	PricePaid    float64   `json:"pricePaid"`    // Уплаченная цена
	SubscribedAt time.Time `json:"subscribedAt"` // Момент покупки
}
