// Command wof runs woflang: scripts in batch mode, or an interactive REPL
// when no script is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/wofl/woflang"
	"github.com/wofl/woflang/ops/dateops"
	"github.com/wofl/woflang/ops/mathops"
	"github.com/wofl/woflang/ops/stackops"
	"github.com/wofl/woflang/ops/strops"
	"github.com/wofl/woflang/ops/sysops"
	"github.com/wofl/woflang/ops/unitops"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", defaultConfigPath(), "path to YAML config file")
	pluginDir := flag.String("plugins", "", "extra plugin directory to scan")
	strict := flag.Bool("strict-plugins", false, "abort plugin directory scans on the first bad module")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: wof [flags] [script ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := woflang.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wof:", err)
		return 1
	}
	if *strict {
		cfg.StrictPlugins = true
	}
	if *pluginDir != "" {
		cfg.PluginDirs = append(cfg.PluginDirs, *pluginDir)
	}

	it := woflang.New()
	defer it.Close()
	it.StrictPlugins = cfg.StrictPlugins
	stackops.Register(it)
	mathops.Register(it)
	strops.Register(it)
	dateops.Register(it)
	sysops.Register(it)
	unitops.Register(it)

	for _, dir := range cfg.PluginDirs {
		if err := it.LoadPluginsFromDir(dir); err != nil {
			fmt.Fprintln(os.Stderr, "wof:", err)
			return 1
		}
	}

	for _, script := range cfg.Preload {
		if err := it.ExecScript(script); err != nil {
			fmt.Fprintln(os.Stderr, "wof:", err)
			return 1
		}
	}

	if flag.NArg() > 0 {
		for _, script := range flag.Args() {
			if err := it.ExecScript(script); err != nil {
				fmt.Fprintln(os.Stderr, "wof:", err)
				return 1
			}
		}
		return 0
	}
	return repl(it, cfg)
}

// repl reads lines until quit or EOF. Errors from a line are printed and
// the loop continues; the stack keeps whatever the completed tokens left.
func repl(it *woflang.Interp, cfg woflang.Config) int {
	fmt.Printf("woflang %s. Type 'quit' to exit.\n", woflang.Version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(cfg.HistoryFile); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return 0
			}
			fmt.Fprintln(os.Stderr, "wof:", err)
			return 1
		}
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "quit":
			return 0
		case "clear":
			it.Clear()
			continue
		case "show":
			it.PrintStack(os.Stdout)
			continue
		case "ops":
			fmt.Println(strings.Join(it.OpNames(), " "))
			continue
		}
		ln.AppendHistory(line)
		if err := it.ExecLine(line); err != nil {
			fmt.Println("Error:", err)
		}
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wofrc"
	}
	return filepath.Join(home, ".wofrc")
}
