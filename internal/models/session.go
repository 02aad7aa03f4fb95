package models

// Session — неизменяемый снимок состояния сессии: текущий пользователь
// и список его подписок. Nil User означает, что в систему никто не вошёл,
// список подписок при этом пуст.
type Session struct {
	User          *User          `json:"user"`
	Subscriptions []Subscription `json:"subscriptions"`
}
