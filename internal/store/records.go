package store

import (
	"VeriUser/internal/model"
	"VeriUser/internal/repo"
	"context"
	"sync"
)

// Records — упорядоченная коллекция записей. Загружается один раз при старте,
// каждая мутация сначала перезаписывает всю коллекцию в хранилище и только
// после успешной записи меняет состояние в памяти.
type Records struct {
	kv repo.KVRepository

	mu    sync.RWMutex
	items []model.Record
}

// LoadRecords читает коллекцию из хранилища.
func LoadRecords(ctx context.Context, kv repo.KVRepository) (*Records, error) {
	items, err := loadList[model.Record](ctx, kv, KeyRecords, nil)
	if err != nil {
		return nil, err
	}
	return &Records{kv: kv, items: items}, nil
}

// List возвращает копию коллекции в порядке добавления.
func (s *Records) List() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.items)
}

// Len количество записей.
func (s *Records) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get ищет запись по id.
func (s *Records) Get(id string) (model.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.items, id); i >= 0 {
		return s.items[i].Clone(), true
	}
	return model.Record{}, false
}

// Add добавляет запись в конец коллекции.
func (s *Records) Add(ctx context.Context, r model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(cloneRecords(s.items), r.Clone())
	return s.commit(ctx, next)
}

// Replace заменяет запись с указанным id целиком, сохраняя её позицию.
func (s *Records) Replace(ctx context.Context, id string, r model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.items, id)
	if i < 0 {
		return ErrNotFound
	}
	next := cloneRecords(s.items)
	next[i] = r.Clone()
	return s.commit(ctx, next)
}

// Remove удаляет запись без следа.
func (s *Records) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.items, id)
	if i < 0 {
		return ErrNotFound
	}
	next := make([]model.Record, 0, len(s.items)-1)
	next = append(next, cloneRecords(s.items[:i])...)
	next = append(next, cloneRecords(s.items[i+1:])...)
	return s.commit(ctx, next)
}

// ReplaceAll заменяет всю коллекцию (импорт).
func (s *Records) ReplaceAll(ctx context.Context, rs []model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, cloneRecords(rs))
}

// commit вызывается под s.mu.
func (s *Records) commit(ctx context.Context, next []model.Record) error {
	if err := saveList(ctx, s.kv, KeyRecords, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

func indexOf(items []model.Record, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneRecords(in []model.Record) []model.Record {
	out := make([]model.Record, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
