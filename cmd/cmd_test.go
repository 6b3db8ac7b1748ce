package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/database"
	"github.com/Zachkp/portfolio/internal/repository"
)

func run(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
}

func TestMigrateAndSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmd.db")
	v.Set(config.KeyDatabaseURI, "sqlite:///"+path)
	v.Set(config.KeyEnv, "production")
	t.Cleanup(func() {
		v.Set(config.KeyDatabaseURI, nil)
		v.Set(config.KeyEnv, nil)
	})

	run(t, "migrate")
	run(t, "seed", filepath.Join("..", "data", "seed.yaml"))

	db, err := database.Open(database.Options{URI: path})
	require.NoError(t, err)
	defer database.Close(db)

	n, err := repository.New(db).Projects.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRoutesCommand(t *testing.T) {
	run(t, "routes")
}
