// Package repotest содержит хранилище в памяти для тестов пакетов над repo.KVRepository.
package repotest

import (
	"VeriUser/internal/repo"
	"context"
	"sync"
)

// MemKV — repo.KVRepository на map, считает записи.
type MemKV struct {
	mu   sync.Mutex
	data map[string][]byte
	puts int
	err  error
}

func NewMemKV() *MemKV { return &MemKV{data: map[string][]byte{}} }

func (m *MemKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = append([]byte(nil), value...)
	m.puts++
	return nil
}

// FailPuts заставляет все следующие Put возвращать err (nil снимает сбой).
func (m *MemKV) FailPuts(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Puts количество вызовов Put.
func (m *MemKV) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

var _ repo.KVRepository = (*MemKV)(nil)

// Set кладёт значение в обход счётчика Put.
func (m *MemKV) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
}

// Value текущее значение ключа или nil.
func (m *MemKV) Value(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}
