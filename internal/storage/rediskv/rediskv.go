// Package rediskv реализует долговременное key-value хранилище поверх Redis.
// Записи сохраняются без срока жизни и переживают перезапуск процесса.
package rediskv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/asmolenkov/course-catalog/internal/config"
)

// Store — key-value хранилище поверх клиента Redis.
type Store struct {
	Db *redis.Client
}

// InitServer подключается к Redis по настройкам из конфига и проверяет
// соединение через Ping.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Store, error) {
	const op = "rediskv.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{Db: db}, nil
}

// Get читает значение по ключу. redis.Nil означает отсутствие ключа.
func (s *Store) Get(key string, result any) (bool, error) {
	const op = "rediskv.Get"
	val, err := s.Db.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сериализует значение в JSON и сохраняет его без срока жизни.
func (s *Store) Set(key string, value any) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Db.Set(context.Background(), key, jsonData, 0).Err()
}

// Remove удаляет ключ.
func (s *Store) Remove(key string) error {
	return s.Db.Del(context.Background(), key).Err()
}

// Close закрывает соединение с Redis.
func (s *Store) Close() error {
	return s.Db.Close()
}
