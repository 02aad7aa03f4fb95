// Package filekv реализует долговременное key-value хранилище поверх
// файловой системы: одна запись — один JSON-файл в каталоге хранилища.
// Это аналог локального хранилища браузера для однопользовательского
// процесса, без обработки конкурентных писателей.
package filekv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store хранит записи в каталоге dir, по файлу на ключ.
type Store struct {
	dir string
}

// New создает хранилище в указанном каталоге, при необходимости создавая его.
func New(dir string) (*Store, error) {
	const op = "filekv.New"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get читает значение по ключу. Отсутствующий файл означает отсутствие
// ключа; нечитаемое или повреждённое содержимое возвращается как ошибка.
func (s *Store) Get(key string, result any) (bool, error) {
	const op = "filekv.Get"
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(data, result); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сериализует значение в JSON и записывает его в файл ключа.
func (s *Store) Set(key string, value any) error {
	const op = "filekv.Set"
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Remove удаляет файл ключа, отсутствие файла не считается ошибкой.
func (s *Store) Remove(key string) error {
	const op = "filekv.Remove"
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
