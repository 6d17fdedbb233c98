package store

import (
	"VeriUser/internal/repo"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Ключи коллекций в KV-хранилище. Страница сертификата читает те же ключи.
const (
	KeyRecords    = "veriuserru_data"
	KeyStatuses   = "veriuserru_statuses"
	KeyCategories = "veriuserru_categories"
	KeyReasons    = "veriuserru_reasons"
)

var (
	// ErrNotFound запись с таким id отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrReservedStatus попытка удалить verified или fraud.
	ErrReservedStatus = errors.New("status is reserved and cannot be removed")
	// ErrEmptyName пустое имя записи справочника.
	ErrEmptyName = errors.New("name is required")
)

// loadList читает коллекцию под ключом; если ключа нет, возвращает def.
func loadList[T any](ctx context.Context, kv repo.KVRepository, key string, def []T) ([]T, error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return def, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

// saveList перезаписывает коллекцию целиком.
func saveList[T any](ctx context.Context, kv repo.KVRepository, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
