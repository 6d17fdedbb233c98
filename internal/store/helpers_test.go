package store

import (
	"VeriUser/internal/repo"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// mockKV — testify-мок для проверки ошибок записи.
type mockKV struct{ mock.Mock }

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if v, ok := args.Get(0).([]byte); ok {
		return v, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockKV) Put(ctx context.Context, key string, value []byte) error {
	return m.Called(ctx, key, value).Error(0)
}

var _ repo.KVRepository = (*mockKV)(nil)

var baseTime = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
