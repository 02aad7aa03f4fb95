// Package storage определяет узкую абстракцию долговременного key-value
// хранилища, через которую сессионный сервис сохраняет своё состояние.
// Реализации находятся в подпакетах filekv и rediskv.
package storage

// Storage описывает долговременное key-value хранилище.
// Значения сериализуются в JSON на стороне реализации.
type Storage interface {
	// Get читает значение по ключу в result.
	// Возвращает false, если ключ отсутствует.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение по ключу, перезаписывая существующее.
	Set(key string, value any) error
	// Remove удаляет значение по ключу. Отсутствие ключа не является ошибкой.
	Remove(key string) error
}
