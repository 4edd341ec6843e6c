package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PETMATCH_DB", "PETMATCH_QUIZ_DIR", "PETMATCH_PRIMARY", "PETMATCH_HISTORY", "PETMATCH_LOG_LEVEL"} {
		t.Setenv(k, "") // restored after the test
		os.Unsetenv(k)
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PETMATCH_DB", "/tmp/p.db")
	t.Setenv("PETMATCH_QUIZ_DIR", "/srv/quizzes")
	t.Setenv("PETMATCH_PRIMARY", "dog")
	t.Setenv("PETMATCH_HISTORY", "3")
	t.Setenv("PETMATCH_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		DBPath:   "/tmp/p.db",
		QuizDir:  "/srv/quizzes",
		Primary:  "dog",
		History:  3,
		LogLevel: "debug",
	}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("PETMATCH_HISTORY", "many")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("PETMATCH_HISTORY", "-2")
	_, err = FromEnv()
	assert.Error(t, err)
}
