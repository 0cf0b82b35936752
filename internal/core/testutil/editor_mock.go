package testutil

// MockEditor is a mock implementation of ports.Editor.
type MockEditor struct {
	OpenFunc func(path string) error
	Opened   []string
}

// Open records the path and calls the mock OpenFunc.
func (m *MockEditor) Open(path string) error {
	m.Opened = append(m.Opened, path)
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	return nil
}
