package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestXDGDirs(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name  string
		env   string
		value string
		fn    func() (string, error)
		want  string
	}{
		{"cache default", "XDG_CACHE_HOME", "", cacheDir, filepath.Join(home, ".cache", appName)},
		{"cache xdg", "XDG_CACHE_HOME", "/tmp/custom-cache", cacheDir, filepath.Join("/tmp/custom-cache", appName)},
		{"config default", "XDG_CONFIG_HOME", "", configDir, filepath.Join(home, ".config", appName)},
		{"config xdg", "XDG_CONFIG_HOME", "/tmp/custom-config", configDir, filepath.Join("/tmp/custom-config", appName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigPathOverride(t *testing.T) {
	c := &CLI{ConfigPath: "/etc/cups.toml"}
	got, err := c.configPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/etc/cups.toml" {
		t.Errorf("configPath() = %q, want override", got)
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	c.ConfigPath = ""
	got, err = c.configPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/cfg", appName, "config.toml"); got != want {
		t.Errorf("configPath() = %q, want %q", got, want)
	}
}
