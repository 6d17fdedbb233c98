package repo

import (
	"VeriUser/internal/model"
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository минимальный контракт хранилища коллекций: значение под ключом
// читается и перезаписывается только целиком.
type KVRepository interface {
	// Get возвращает значение по ключу; found=false, если ключа нет.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put полностью заменяет значение по ключу.
	Put(ctx context.Context, key string, value []byte) error
}

type kvRepo struct {
	db *gorm.DB
}

// NewKVRepository создаёт реализацию KVRepository поверх gorm.
func NewKVRepository(db *gorm.DB) KVRepository {
	return &kvRepo{db: db}
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var e model.Entry
	err := r.db.WithContext(ctx).Where(map[string]any{"key": key}).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(e.Value), true, nil
}

// Put делает upsert по ключу: последняя запись побеждает.
func (r *kvRepo) Put(ctx context.Context, key string, value []byte) error {
	e := &model.Entry{Key: key, Value: datatypes.JSON(value)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(e).Error
}
