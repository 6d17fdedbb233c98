package store

import (
	"VeriUser/internal/repo"
	"context"
	"strings"
	"sync"
)

// Reasons — список готовых формулировок причины. Запись хранит причину как
// обычный текст, поэтому удаление формулировки записи не затрагивает.
type Reasons struct {
	kv repo.KVRepository

	mu    sync.RWMutex
	items []string
}

func LoadReasons(ctx context.Context, kv repo.KVRepository) (*Reasons, error) {
	items, err := loadList[string](ctx, kv, KeyReasons, nil)
	if err != nil {
		return nil, err
	}
	return &Reasons{kv: kv, items: items}, nil
}

func (r *Reasons) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.items...)
}

func (r *Reasons) Add(ctx context.Context, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	next := append(append([]string(nil), r.items...), reason)
	if err := saveList(ctx, r.kv, KeyReasons, next); err != nil {
		return err
	}
	r.items = next
	return nil
}

// Remove удаляет все вхождения формулировки.
func (r *Reasons) Remove(ctx context.Context, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]string, 0, len(r.items))
	for _, it := range r.items {
		if it != reason {
			next = append(next, it)
		}
	}
	if len(next) == len(r.items) {
		return nil
	}
	if err := saveList(ctx, r.kv, KeyReasons, next); err != nil {
		return err
	}
	r.items = next
	return nil
}
