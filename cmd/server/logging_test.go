package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetentionDays(t *testing.T) {
	assert.Equal(t, 7, retentionDays(""))
	assert.Equal(t, 7, retentionDays("abc"))
	assert.Equal(t, 7, retentionDays("30"))
	assert.Equal(t, 3, retentionDays(" 3 "))
	assert.Equal(t, 7, retentionDays("-1"))
}

func TestPruneLogsKeepsWindow(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"club-2026-10-01.log",
		"club-2026-10-10.log",
		"club-2026-10-12.log",
		"club-notadate.log",
		"other-2026-10-01.log",
	}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	pruneLogs(dir, time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC))

	_, err := os.Stat(filepath.Join(dir, "club-2026-10-01.log"))
	assert.True(t, os.IsNotExist(err))
	for _, kept := range files[1:] {
		assert.FileExists(t, filepath.Join(dir, kept))
	}
}
