package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beeftest/internal/config"
	"beeftest/internal/domain"
)

func sampleRun() *domain.RunRecord {
	return &domain.RunRecord{
		Meta: domain.RunMeta{
			RunID:     "4f1c2a58-8d57-4e8b-9d0e-3f3a0c1b2d4e",
			Executed:  3,
			Passed:    2,
			Failed:    1,
			Duration:  "1.5ms",
			Timestamp: "2026-10-15T10:00:00Z",
		},
		Details: []domain.TestFailure{{
			TestName: "subtracts",
			File:     "/src/math_test.go",
			Line:     12,
			Failed:   []domain.Record{{Expression: "Cond(3 - 1 == 1)", Line: 14}},
		}},
	}
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.WorkDir = t.TempDir()
	st := NewJSONStorage(cfg)

	run := sampleRun()
	require.NoError(t, st.Save(run))

	_, err := os.Stat(cfg.GetOutputPath())
	require.NoError(t, err)

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, run, loaded)

	t.Run("saving again replaces the run", func(t *testing.T) {
		loaded.Details[0].Resolved = true
		require.NoError(t, st.Save(loaded))

		again, err := st.Load()
		require.NoError(t, err)
		assert.True(t, again.Details[0].Resolved)
		assert.Equal(t, 0, again.Unresolved())
	})
}

func TestJSONStorage_LoadErrors(t *testing.T) {
	cfg := config.New()
	cfg.WorkDir = t.TempDir()
	st := NewJSONStorage(cfg)

	_, err := st.Load()
	assert.ErrorContains(t, err, "read run file")

	require.NoError(t, os.MkdirAll(cfg.WorkDir+"/"+cfg.OutputDir, 0755))
	require.NoError(t, os.WriteFile(cfg.GetOutputPath(), []byte("{not json"), 0644))
	_, err = st.Load()
	assert.ErrorContains(t, err, "parse run")
}

func TestNew_PicksBackend(t *testing.T) {
	cfg := config.New()
	assert.IsType(t, &JSONStorage{}, New(cfg))

	cfg.Database = config.Database{Host: "db", Name: "results"}
	assert.IsType(t, &MySQLStorage{}, New(cfg))
}
