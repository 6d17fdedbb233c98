package store

import (
	"VeriUser/internal/repo"
	"context"
)

// Store объединяет коллекцию записей и справочники, загруженные из одного хранилища.
type Store struct {
	Records    *Records
	Statuses   *Statuses
	Categories *Categories
	Reasons    *Reasons
}

// Open загружает все коллекции.
func Open(ctx context.Context, kv repo.KVRepository) (*Store, error) {
	records, err := LoadRecords(ctx, kv)
	if err != nil {
		return nil, err
	}
	statuses, err := LoadStatuses(ctx, kv)
	if err != nil {
		return nil, err
	}
	categories, err := LoadCategories(ctx, kv)
	if err != nil {
		return nil, err
	}
	reasons, err := LoadReasons(ctx, kv)
	if err != nil {
		return nil, err
	}
	return &Store{Records: records, Statuses: statuses, Categories: categories, Reasons: reasons}, nil
}
