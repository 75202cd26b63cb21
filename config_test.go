package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeFile(t, "zoomgrid.yaml", `
window:
  width: 640
zoom:
  max: 3
grid:
  spacing: 20
log_events: true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Window.Width != 640 || cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("Unexpected window %+v", cfg.Window)
	}
	if cfg.Zoom.Min != ZoomLimitMin || cfg.Zoom.Max != 3 {
		t.Errorf("Unexpected zoom %+v", cfg.Zoom)
	}
	if g := cfg.CanvasGrid(); g.D != 20 || g.W != GridWidth {
		t.Errorf("Unexpected grid %+v", g)
	}
	if !cfg.LogEvents {
		t.Error("Expected log_events to be set")
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero min":     "zoom:\n  min: 0\n",
		"min over max": "zoom:\n  min: 6\n",
		"no spacing":   "grid:\n  spacing: 0\n",
		"bad yaml":     "zoom: [",
		"nan min":      "zoom:\n  min: .nan\n",
		"nan max":      "zoom:\n  max: .nan\n",
		"inf max":      "zoom:\n  max: .inf\n",
		"nan spacing":  "grid:\n  spacing: .nan\n",
		"inf spacing":  "grid:\n  spacing: .inf\n",
		"nan key step": "zoom:\n  key_step: .nan\n",
		"inf width":    "grid:\n  width: -.inf\n",
	}
	for name, content := range cases {
		path := writeFile(t, "bad.yaml", content)
		_, err := LoadConfig(path)
		if err == nil {
			t.Errorf("%s: expected an error", name)
			continue
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("%s: error should name the file, got %v", name, err)
		}
	}
}

func TestConfigSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoomgrid.yaml")
	cfg := DefaultConfig()
	cfg.Window.Title = "Saved"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, loaded)
	}
}
