package storage

import (
	"os"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beeftest/internal/config"
)

func TestMySQLStorage_DSN(t *testing.T) {
	t.Run("from settings", func(t *testing.T) {
		cfg := config.New()
		cfg.Database = config.Database{Host: "db.local", User: "beef", Password: "s3cret", Name: "results"}

		dsn, err := NewMySQLStorage(cfg).DSN()
		require.NoError(t, err)

		parsed, err := mysql.ParseDSN(dsn)
		require.NoError(t, err)
		assert.Equal(t, "beef", parsed.User)
		assert.Equal(t, "s3cret", parsed.Passwd)
		assert.Equal(t, "tcp", parsed.Net)
		assert.Equal(t, "db.local:3306", parsed.Addr)
		assert.Equal(t, "results", parsed.DBName)
	})

	t.Run("explicit dsn wins", func(t *testing.T) {
		cfg := config.New()
		cfg.Database = config.Database{DSN: "u:p@tcp(other:3307)/x", Host: "ignored", Name: "ignored"}

		dsn, err := NewMySQLStorage(cfg).DSN()
		require.NoError(t, err)
		assert.Equal(t, "u:p@tcp(other:3307)/x", dsn)
	})

	t.Run("rejects unsafe database names", func(t *testing.T) {
		for _, name := range []string{"", "results; DROP TABLE x", "a-b", "x'y"} {
			cfg := config.New()
			cfg.Database = config.Database{Host: "db", Name: name}
			_, err := NewMySQLStorage(cfg).DSN()
			assert.Error(t, err, name)
		}
	})
}

// TestMySQLStorage_SaveLoad needs a reachable server, e.g.
// BEEFTEST_TEST_DB_DSN="root:@tcp(127.0.0.1:3306)/beeftest_test".
func TestMySQLStorage_SaveLoad(t *testing.T) {
	dsn := os.Getenv("BEEFTEST_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("BEEFTEST_TEST_DB_DSN not set")
	}

	cfg := config.New()
	cfg.Database = config.Database{DSN: dsn}
	st := NewMySQLStorage(cfg)

	run := sampleRun()
	run.Meta.RunID = uuid.NewString()
	require.NoError(t, st.Save(run))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, run.Meta, loaded.Meta)
	assert.Equal(t, run.Details, loaded.Details)

	loaded.Details[0].Resolved = true
	require.NoError(t, st.Save(loaded))
	again, err := st.Load()
	require.NoError(t, err)
	assert.True(t, again.Details[0].Resolved)
}
