package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUse(t *testing.T) {
	var buf bytes.Buffer
	Use(&buf, "test")

	log.Info().Int("moves", 18).Msg("game over")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "test", line["component"])
	assert.Equal(t, "game over", line["message"])
	assert.EqualValues(t, 18, line["moves"])
	assert.Contains(t, line, "time")
}

func TestInitAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memorice.log")

	for i := 0; i < 2; i++ {
		closer, err := Init(path, "client")
		require.NoError(t, err)
		log.Info().Msg("hello")
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(data, []byte("\n")))
}

func TestInitBadPath(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), "client")
	assert.Error(t, err)
}

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	SetLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("nonsense")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
