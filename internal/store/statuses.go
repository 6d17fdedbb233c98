package store

import (
	"VeriUser/internal/model"
	"VeriUser/internal/repo"
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Statuses — справочник статусов. verified и fraud существуют всегда.
type Statuses struct {
	kv repo.KVRepository

	mu    sync.RWMutex
	items []model.StatusDefinition
}

// LoadStatuses читает справочник; при пустом хранилище используется начальный набор.
func LoadStatuses(ctx context.Context, kv repo.KVRepository) (*Statuses, error) {
	items, err := loadList(ctx, kv, KeyStatuses, model.DefaultStatuses())
	if err != nil {
		return nil, err
	}
	return &Statuses{kv: kv, items: ensureReserved(items)}, nil
}

// ensureReserved возвращает в справочник зарезервированные статусы, если их нет.
func ensureReserved(items []model.StatusDefinition) []model.StatusDefinition {
	out := append([]model.StatusDefinition(nil), items...)
	for _, def := range model.DefaultStatuses() {
		found := false
		for _, s := range out {
			if s.ID == def.ID {
				found = true
				break
			}
		}
		if !found {
			out = append(out, def)
		}
	}
	return out
}

func (s *Statuses) List() []model.StatusDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.StatusDefinition(nil), s.items...)
}

// Add создаёт статус с новым id. Пустой цвет заменяется на DefaultStatusColor.
func (s *Statuses) Add(ctx context.Context, name, color string) (model.StatusDefinition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.StatusDefinition{}, ErrEmptyName
	}
	color = strings.TrimSpace(color)
	if color == "" {
		color = model.DefaultStatusColor
	}
	def := model.StatusDefinition{ID: uuid.NewString(), Name: name, Color: color}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]model.StatusDefinition(nil), s.items...), def)
	if err := saveList(ctx, s.kv, KeyStatuses, next); err != nil {
		return model.StatusDefinition{}, err
	}
	s.items = next
	return def, nil
}

// Remove удаляет статус. Записи со ссылкой на него не трогаются.
func (s *Statuses) Remove(ctx context.Context, id string) error {
	if model.IsReservedStatus(id) {
		return ErrReservedStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.StatusDefinition, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	if len(next) == len(s.items) {
		return nil
	}
	if err := saveList(ctx, s.kv, KeyStatuses, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// ResolveName возвращает имя статуса или сам id, если статус не найден.
func (s *Statuses) ResolveName(id string) string {
	if def, ok := s.find(id); ok {
		return def.Name
	}
	return id
}

// ResolveColor возвращает цвет статуса или DefaultStatusColor.
func (s *Statuses) ResolveColor(id string) string {
	if def, ok := s.find(id); ok && def.Color != "" {
		return def.Color
	}
	return model.DefaultStatusColor
}

func (s *Statuses) find(id string) (model.StatusDefinition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.StatusDefinition{}, false
}
