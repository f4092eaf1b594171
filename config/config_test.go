package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected *SaladProperties
		wantErr  bool
	}{
		{
			name:     "empty file keeps defaults",
			src:      "",
			expected: Default(),
		},
		{
			name: "all keys",
			src: strings.Join([]string{
				"# fruit salad",
				"mode deque",
				"fruits Fig, Cherry ,Pomegranate",
				"seed 42",
				"loglevel debug",
				"logdir /tmp/salad",
				"filelog yes",
				"color no",
			}, "\n"),
			expected: &SaladProperties{
				Mode:          ModeDeque,
				Fruits:        []string{"Fig", "Cherry", "Pomegranate"},
				Seed:          42,
				LogLevel:      "debug",
				LogDir:        "/tmp/salad",
				EnableFileLog: true,
				Color:         false,
			},
		},
		{
			name: "keys are case insensitive",
			src:  "MODE deque\n   # indented comment\n",
			expected: func() *SaladProperties {
				p := Default()
				p.Mode = ModeDeque
				return p
			}(),
		},
		{
			name:    "unknown mode",
			src:     "mode vector",
			wantErr: true,
		},
		{
			name:    "bad seed",
			src:     "seed abc",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			props, err := parse(strings.NewReader(tc.src))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, props)
		})
	}
}

func TestSetUpConfig(t *testing.T) {
	t.Cleanup(func() {
		Properties = Default()
	})

	t.Run("missing file", func(t *testing.T) {
		err := SetUpConfig(filepath.Join(t.TempDir(), "salad.conf"))
		require.NoError(t, err)
		assert.Equal(t, ModeLinked, Properties.Mode)
		assert.Equal(t, "", Properties.CfPath)
		assert.Len(t, Properties.RunID, 36)
	})

	t.Run("from file", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "salad.conf")
		require.NoError(t, os.WriteFile(filename, []byte("mode deque\nlogdir \n"), 0o644))
		err := SetUpConfig(filename)
		require.NoError(t, err)
		assert.Equal(t, ModeDeque, Properties.Mode)
		assert.Equal(t, filename, Properties.CfPath)
		assert.Equal(t, "./logs", Properties.LogDir)
	})

	t.Run("invalid file", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "salad.conf")
		require.NoError(t, os.WriteFile(filename, []byte("mode vector\n"), 0o644))
		previous := Properties
		assert.Error(t, SetUpConfig(filename))
		assert.Same(t, previous, Properties)
	})
}
