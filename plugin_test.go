package woflang

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestCloseWithoutPlugins tests that teardown with zero plugins loaded is a
// no-op and that Close is idempotent.
func TestCloseWithoutPlugins(t *testing.T) {
	it := New()
	if err := it.Close(); err != nil {
		t.Errorf("Close with no plugins: %v", err)
	}
	if err := it.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestLoadPluginNotAModule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bogus.so")
	if err := os.WriteFile(path, []byte("not a shared object"), 0o644); err != nil {
		t.Fatal(err)
	}
	it := New()
	defer it.Close()
	err := it.LoadPlugin(path)
	if !errors.Is(err, ErrPluginLoadFailed) {
		t.Errorf("error = %v, want ErrPluginLoadFailed", err)
	}
	if it.PluginCount() != 0 {
		t.Errorf("PluginCount = %d, want 0", it.PluginCount())
	}
}

func TestLoadPluginsFromMissingDir(t *testing.T) {
	it := New()
	defer it.Close()
	if err := it.LoadPluginsFromDir(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Errorf("missing directory: error = %v, want nil", err)
	}
	if it.PluginCount() != 0 {
		t.Errorf("PluginCount = %d, want 0", it.PluginCount())
	}
}

func TestLoadPluginsFromFile(t *testing.T) {
	// A path that is a file, not a directory, loads zero plugins.
	dir := t.TempDir()
	path := filepath.Join(dir, "plain")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	it := New()
	defer it.Close()
	if err := it.LoadPluginsFromDir(path); err != nil {
		t.Errorf("non-directory: error = %v, want nil", err)
	}
}

// TestLoadPluginsStrictness tests the scan knob: lenient scans skip bad
// modules, strict scans stop at the first one.
func TestLoadPluginsStrictness(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad"+pluginSuffixes[0])
	if err := os.WriteFile(bad, []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}
	// A non-module extension is never touched.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	lenient := New()
	defer lenient.Close()
	if err := lenient.LoadPluginsFromDir(dir); err != nil {
		t.Errorf("lenient scan: error = %v, want nil", err)
	}

	strict := New()
	defer strict.Close()
	strict.StrictPlugins = true
	if err := strict.LoadPluginsFromDir(dir); !errors.Is(err, ErrPluginLoadFailed) {
		t.Errorf("strict scan: error = %v, want ErrPluginLoadFailed", err)
	}
}

func TestHasPluginSuffix(t *testing.T) {
	if !hasPluginSuffix("x" + pluginSuffixes[0]) {
		t.Errorf("hasPluginSuffix(%q) = false", "x"+pluginSuffixes[0])
	}
	if hasPluginSuffix("x.txt") {
		t.Error("hasPluginSuffix(\"x.txt\") = true")
	}
	if hasPluginSuffix("plain") {
		t.Error("hasPluginSuffix(\"plain\") = true")
	}
}

// TestCloseReleasesPluginObjects tests that plugin objects implementing
// io.Closer are closed exactly once, in load order.
func TestCloseReleasesPluginObjects(t *testing.T) {
	it := New()
	var order []string
	it.pluginObjs = append(it.pluginObjs,
		&recordingPlugin{name: "a", order: &order},
		&recordingPlugin{name: "b", order: &order},
	)
	if err := it.Close(); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("close order = %v, want [a b]", order)
	}
	if err := it.Close(); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 {
		t.Errorf("second Close closed again: %v", order)
	}
}

type recordingPlugin struct {
	name  string
	order *[]string
}

func (p *recordingPlugin) RegisterOps(*Interp) {}

func (p *recordingPlugin) Close() error {
	*p.order = append(*p.order, p.name)
	return nil
}
