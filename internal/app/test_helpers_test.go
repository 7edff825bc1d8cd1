package app

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockManager struct {
	mock.Mock
}

func (m *MockManager) FormatPaths(ctx context.Context, paths []string, opts FormatOptions) error {
	args := m.Called(ctx, paths, opts)
	return args.Error(0)
}

func (m *MockManager) FormatStdin(ctx context.Context, in io.Reader, out io.Writer, opts FormatOptions) error {
	args := m.Called(ctx, in, out, opts)
	return args.Error(0)
}

func (m *MockManager) Watch(ctx context.Context, paths []string, opts FormatOptions) error {
	args := m.Called(ctx, paths, opts)
	return args.Error(0)
}

// mockEnvProvider serves environment values from a map so tests never read
// the real environment.
type mockEnvProvider struct {
	vars map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	return m.vars[key]
}
