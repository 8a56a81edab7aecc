package database

import (
	"testing"

	"github.com/gianmatteo-arcana/engine-lever/pkg/database"
	"github.com/gianmatteo-arcana/engine-lever/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	// Use shared test database setup
	entClient, db := util.SetupTestDatabase(t)

	// Wrap in our client type
	// Note: cleanup (schema drop and connection close) is handled by SetupTestDatabase
	return database.NewClientFromEnt(entClient, db)
}
