package woflang

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"plugin"
	"runtime"
)

// Plugin is the object form of a loaded plugin, produced by a module's
// CreatePlugin factory. RegisterOps is called once at load time with a live
// interpreter; the interpreter owns the object for the rest of its life.
//
// Plugins in woflang are separate main packages built with
// -buildmode=plugin. Two entry-point generations exist in the ecosystem and
// both are supported. A module exports either
//
//	func RegisterPlugin(*woflang.Interp)
//
// which is called directly at load time, or the older factory pair
//
//	func CreatePlugin() woflang.Plugin
//
// whose returned object's RegisterOps method is called instead. The loader
// tries RegisterPlugin first. In either style the plugin calls Register for
// each op it provides; once registered, plugin ops are indistinguishable
// from built-in ones.
type Plugin interface {
	RegisterOps(*Interp)
}

// pluginHandle records one successfully opened module. Go plugins cannot be
// unloaded, so release means dropping the reference in Close.
type pluginHandle struct {
	path string
	plug *plugin.Plugin
}

// LoadPlugin opens the dynamic module at path and runs its registration
// entry point. It fails with ErrPluginLoadFailed if the module cannot be
// opened and ErrPluginEntryPoint if it exports neither entry point.
func (it *Interp) LoadPlugin(path string) error {
	plug, err := plugin.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPluginLoadFailed, path, err)
	}
	if sym, err := plug.Lookup("RegisterPlugin"); err == nil {
		if f, ok := sym.(func(*Interp)); ok {
			f(it)
			it.plugins = append(it.plugins, pluginHandle{path, plug})
			return nil
		}
	}
	if sym, err := plug.Lookup("CreatePlugin"); err == nil {
		if f, ok := sym.(func() Plugin); ok {
			obj := f()
			obj.RegisterOps(it)
			it.pluginObjs = append(it.pluginObjs, obj)
			it.plugins = append(it.plugins, pluginHandle{path, plug})
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPluginEntryPoint, path)
}

// LoadPluginsFromDir loads every dynamic module directly inside dir; it does
// not recurse. A missing path or a non-directory loads zero plugins and is
// not an error. A module that fails to load is skipped unless StrictPlugins
// is set, in which case the scan stops there.
func (it *Interp) LoadPluginsFromDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPluginLoadFailed, dir, err)
	}
	for _, ent := range entries {
		if ent.IsDir() || !hasPluginSuffix(ent.Name()) {
			continue
		}
		if err := it.LoadPlugin(filepath.Join(dir, ent.Name())); err != nil {
			if it.StrictPlugins {
				return err
			}
		}
	}
	return nil
}

// PluginCount returns the number of loaded plugin modules.
func (it *Interp) PluginCount() int { return len(it.plugins) }

// Close releases every plugin loaded by the interpreter, exactly once.
// Plugin objects that implement io.Closer are closed in load order. Calling
// Close again, or on an interpreter that loaded nothing, is a no-op.
func (it *Interp) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	var first error
	for _, obj := range it.pluginObjs {
		if c, ok := obj.(io.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	it.pluginObjs = nil
	it.plugins = nil
	return first
}

// hasPluginSuffix reports whether name looks like a dynamic module on the
// host platform.
func hasPluginSuffix(name string) bool {
	for _, suffix := range pluginSuffixes {
		if filepath.Ext(name) == suffix {
			return true
		}
	}
	return false
}

var pluginSuffixes = func() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{".dll"}
	case "darwin":
		return []string{".so", ".dylib"}
	default:
		return []string{".so"}
	}
}()

// pluginsAvailable indicates whether Go's plugin system works on the current
// platform. It should become true on Linux or Darwin with cgo enabled.
var pluginsAvailable = false

func init() {
	_, err := plugin.Open(os.DevNull)
	if err == nil || err.Error() != "plugin: not implemented" {
		pluginsAvailable = true
	}
}

// PluginsAvailable reports whether dynamic plugin loading is supported by
// the host platform and build mode.
func PluginsAvailable() bool { return pluginsAvailable }
