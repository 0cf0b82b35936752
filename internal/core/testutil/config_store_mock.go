package testutil

import (
	"errors"

	"github.com/AntonioJCosta/prog/internal/core/domain/config"
)

// MockConfigStore is a mock implementation of ports.ConfigStore.
type MockConfigStore struct {
	LocateFunc func(explicit string) (string, bool, error)
	LoadFunc   func(path string, format config.Format) (config.Configuration, error)
	WriteFunc  func(path string, data []byte) error

	// Written holds the last data passed to Write, by path.
	Written map[string][]byte
}

func (m *MockConfigStore) Locate(explicit string) (string, bool, error) {
	if m.LocateFunc != nil {
		return m.LocateFunc(explicit)
	}
	return "", false, errors.New("MockConfigStore: LocateFunc not implemented")
}

func (m *MockConfigStore) Load(path string, format config.Format) (config.Configuration, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path, format)
	}
	return config.Configuration{}, errors.New("MockConfigStore: LoadFunc not implemented")
}

func (m *MockConfigStore) Write(path string, data []byte) error {
	if m.WriteFunc != nil {
		if err := m.WriteFunc(path, data); err != nil {
			return err
		}
	}
	if m.Written == nil {
		m.Written = map[string][]byte{}
	}
	m.Written[path] = data
	return nil
}
