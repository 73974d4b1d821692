package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag at end keeps no value",
			args:         []string{"-t"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-e", "db.sqlite"},
			allowedFlags: []string{"-c", "-e"},
			want:         []string{"-c", "-e", "db.sqlite"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-w", "10s", "-w", "20s"},
			allowedFlags: []string{"-w"},
			want:         []string{"-w", "10s", "-w", "20s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Run("short flag", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")
		assert.Equal(t, "/etc/edge.json", ConfigPath([]string{"-a", ":8080", "-c", "/etc/edge.json"}))
	})

	t.Run("long flag wins over env", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "/env.json")
		assert.Equal(t, "/flag.json", ConfigPath([]string{"-config=/flag.json"}))
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "/env.json")
		assert.Equal(t, "/env.json", ConfigPath(nil))
	})

	t.Run("nothing set", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")
		assert.Empty(t, ConfigPath([]string{"-x", "1"}))
	})
}
