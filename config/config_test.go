package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/teranos/propdrift/scan"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Scan.Root != "." {
		t.Errorf("expected default scan root '.', got %q", cfg.Scan.Root)
	}
	if cfg.Scan.DeclaredSuffix != scan.DefaultDeclaredSuffix {
		t.Errorf("expected default declared suffix %q, got %q", scan.DefaultDeclaredSuffix, cfg.Scan.DeclaredSuffix)
	}
	if cfg.Scan.FailOnDrift {
		t.Error("expected fail_on_drift to default to false")
	}
	if cfg.Watch.DebounceMs != 500 {
		t.Errorf("expected default debounce 500, got %d", cfg.Watch.DebounceMs)
	}
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"scan.root", "."},
		{"scan.declared_suffix", ".generated.ts"},
		{"scan.output", ""},
		{"scan.fail_on_drift", false},
		{"watch.debounce_ms", 500},
		{"log.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := v.Get(tt.key)
			if got != tt.expected {
				t.Errorf("default %s = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)
	content := `
[scan]
root = "packages"
output = "drift.json"
fail_on_drift = true

[watch]
debounce_ms = 250
`
	if err := os.WriteFile(path, []byte(content), DefaultFilePermissions); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Scan.Root != "packages" {
		t.Errorf("expected scan root 'packages', got %q", cfg.Scan.Root)
	}
	if cfg.Scan.Output != "drift.json" {
		t.Errorf("expected output 'drift.json', got %q", cfg.Scan.Output)
	}
	if !cfg.Scan.FailOnDrift {
		t.Error("expected fail_on_drift true")
	}
	if cfg.Watch.DebounceMs != 250 {
		t.Errorf("expected debounce 250, got %d", cfg.Watch.DebounceMs)
	}
	// Defaults survive for keys the file omits
	if cfg.Scan.DeclaredSuffix != scan.DefaultDeclaredSuffix {
		t.Errorf("expected default declared suffix, got %q", cfg.Scan.DeclaredSuffix)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestFindProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("found in ancestor", func(t *testing.T) {
		subDir := filepath.Join(tmpDir, "test1", "subdir")
		os.MkdirAll(subDir, DefaultDirPermissions)
		os.WriteFile(filepath.Join(tmpDir, "test1", ConfigFileName), []byte(""), DefaultFilePermissions)

		result := findProjectConfigFrom(subDir)
		if result == "" {
			t.Fatal("expected to find config file")
		}
		if filepath.Base(result) != ConfigFileName {
			t.Errorf("expected %s, got %s", ConfigFileName, filepath.Base(result))
		}
	})

	t.Run("no config found", func(t *testing.T) {
		subDir := filepath.Join(tmpDir, "test2", "subdir")
		os.MkdirAll(subDir, DefaultDirPermissions)

		result := findProjectConfigFrom(subDir)
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})
}
