package woflang

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wofrc.yaml")
	src := `
plugin_dirs:
  - /opt/wof/plugins
  - plugins
strict_plugins: true
prompt: ">> "
preload:
  - boot.wof
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.PluginDirs, []string{"/opt/wof/plugins", "plugins"}) {
		t.Errorf("PluginDirs = %v", cfg.PluginDirs)
	}
	if !cfg.StrictPlugins {
		t.Error("StrictPlugins = false, want true")
	}
	if cfg.Prompt != ">> " {
		t.Errorf("Prompt = %q", cfg.Prompt)
	}
	if cfg.HistoryFile != DefaultConfig().HistoryFile {
		t.Errorf("HistoryFile = %q, want default", cfg.HistoryFile)
	}
	if !reflect.DeepEqual(cfg.Preload, []string{"boot.wof"}) {
		t.Errorf("Preload = %v", cfg.Preload)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("prompt: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed config parsed without error")
	}
}
