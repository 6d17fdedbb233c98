package store

import (
	"VeriUser/internal/model"
	"VeriUser/internal/repo"
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Categories — справочник категорий, удаляется без ограничений.
type Categories struct {
	kv repo.KVRepository

	mu    sync.RWMutex
	items []model.CategoryDefinition
}

func LoadCategories(ctx context.Context, kv repo.KVRepository) (*Categories, error) {
	items, err := loadList[model.CategoryDefinition](ctx, kv, KeyCategories, nil)
	if err != nil {
		return nil, err
	}
	return &Categories{kv: kv, items: items}, nil
}

func (c *Categories) List() []model.CategoryDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.CategoryDefinition(nil), c.items...)
}

func (c *Categories) Add(ctx context.Context, name string) (model.CategoryDefinition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.CategoryDefinition{}, ErrEmptyName
	}
	def := model.CategoryDefinition{ID: uuid.NewString(), Name: name}

	c.mu.Lock()
	defer c.mu.Unlock()
	next := append(append([]model.CategoryDefinition(nil), c.items...), def)
	if err := saveList(ctx, c.kv, KeyCategories, next); err != nil {
		return model.CategoryDefinition{}, err
	}
	c.items = next
	return def, nil
}

// Remove удаляет категорию; ссылки в записях остаются висячими.
func (c *Categories) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]model.CategoryDefinition, 0, len(c.items))
	for _, it := range c.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	if len(next) == len(c.items) {
		return nil
	}
	if err := saveList(ctx, c.kv, KeyCategories, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

// ResolveName возвращает имя категории или сам id.
func (c *Categories) ResolveName(id string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.ID == id {
			return it.Name
		}
	}
	return id
}
