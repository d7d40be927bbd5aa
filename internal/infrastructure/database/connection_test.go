package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacerover/spacerover-go/internal/infrastructure/config"
	"github.com/spacerover/spacerover-go/internal/infrastructure/database"
)

func TestNewConnection_PostgresNeedsURL(t *testing.T) {
	_, err := database.NewConnection(&config.DatabaseConfig{Type: "postgres"})

	assert.ErrorContains(t, err, "connection url")
}

func TestNewConnection_RejectsUnknownType(t *testing.T) {
	_, err := database.NewConnection(&config.DatabaseConfig{Type: "mysql"})

	assert.ErrorContains(t, err, "unsupported database type")
}

func TestNewTestConnection_Migrates(t *testing.T) {
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	for _, model := range []string{"games"} {
		assert.True(t, db.Migrator().HasTable(model), model)
	}
}
