package postgresql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHelper ties a TestContainer to the lifetime of a test.
type TestHelper struct {
	Container *TestContainer
	T         *testing.T
}

// NewTestHelperWithConfig starts a container for t. It skips in -short mode.
func NewTestHelperWithConfig(t *testing.T, config *TestContainerConfig) *TestHelper {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	container, err := NewTestContainer(context.Background(), config)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Close(context.Background()); err != nil {
			t.Logf("Failed to close test container: %v", err)
		}
	})

	return &TestHelper{Container: container, T: t}
}

// GetClient returns the client connected to the container.
func (h *TestHelper) GetClient() PostgreSQLClient {
	return h.Container.Client
}

// CleanupTables truncates tables and fails the test on error.
func (h *TestHelper) CleanupTables(tables ...string) {
	require.NoError(h.T, h.Container.TruncateTables(context.Background(), tables...))
}
