package service

import (
	"VeriUser/internal/repo/repotest"
	"VeriUser/internal/store"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

// newTestServices поднимает сервисы поверх in-memory хранилища с фиксированным временем.
func newTestServices(t *testing.T) (*RecordService, *RegistryService, *store.Store) {
	t.Helper()
	st, err := store.Open(context.Background(), repotest.NewMemKV())
	require.NoError(t, err)
	logger := zap.NewNop().Sugar()
	rs := NewRecordService(st, logger).WithClock(func() time.Time { return fixedNow })
	return rs, NewRegistryService(st, logger), st
}

func validInput() RecordInput {
	return RecordInput{
		Name:     "Иван Иванов",
		Username: "ivan",
		Channel:  "@ivan_channel",
		Age:      "25",
		Patents:  []string{"Пользователю Иван принадлежит @ivan"},
		Status:   "verified",
	}
}
