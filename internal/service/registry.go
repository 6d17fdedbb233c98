package service

import (
	"VeriUser/internal/model"
	"VeriUser/internal/store"
	"context"

	"go.uber.org/zap"
)

// RegistryService управляет справочниками статусов, категорий и причин.
type RegistryService struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

func NewRegistryService(st *store.Store, logger *zap.SugaredLogger) *RegistryService {
	return &RegistryService{store: st, logger: logger}
}

func (s *RegistryService) Statuses() []model.StatusDefinition {
	return s.store.Statuses.List()
}

func (s *RegistryService) AddStatus(ctx context.Context, name, color string) (model.StatusDefinition, error) {
	def, err := s.store.Statuses.Add(ctx, name, color)
	if err != nil {
		return def, err
	}
	s.logger.Infow("Status added", "id", def.ID, "name", def.Name)
	return def, nil
}

// RemoveStatus возвращает store.ErrReservedStatus для verified/fraud.
func (s *RegistryService) RemoveStatus(ctx context.Context, id string) error {
	if err := s.store.Statuses.Remove(ctx, id); err != nil {
		s.logger.Warnw("RemoveStatus: refused", "id", id, "error", err)
		return err
	}
	s.logger.Infow("Status removed", "id", id)
	return nil
}

func (s *RegistryService) Categories() []model.CategoryDefinition {
	return s.store.Categories.List()
}

func (s *RegistryService) AddCategory(ctx context.Context, name string) (model.CategoryDefinition, error) {
	def, err := s.store.Categories.Add(ctx, name)
	if err != nil {
		return def, err
	}
	s.logger.Infow("Category added", "id", def.ID, "name", def.Name)
	return def, nil
}

func (s *RegistryService) RemoveCategory(ctx context.Context, id string) error {
	if err := s.store.Categories.Remove(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("Category removed", "id", id)
	return nil
}

func (s *RegistryService) Reasons() []string {
	return s.store.Reasons.List()
}

func (s *RegistryService) AddReason(ctx context.Context, reason string) error {
	if err := s.store.Reasons.Add(ctx, reason); err != nil {
		return err
	}
	s.logger.Infow("Reason added", "reason", reason)
	return nil
}

func (s *RegistryService) RemoveReason(ctx context.Context, reason string) error {
	if err := s.store.Reasons.Remove(ctx, reason); err != nil {
		return err
	}
	s.logger.Infow("Reason removed", "reason", reason)
	return nil
}

// StatusName разрешает id статуса (для списка записей).
func (s *RegistryService) StatusName(id string) string { return s.store.Statuses.ResolveName(id) }

// StatusColor разрешает цвет статуса.
func (s *RegistryService) StatusColor(id string) string { return s.store.Statuses.ResolveColor(id) }

// CategoryName разрешает id категории.
func (s *RegistryService) CategoryName(id string) string { return s.store.Categories.ResolveName(id) }
