// Copyright 2025 The LexiTrie Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the trie lookup server and CLI application.

LexiTrie provides prefix completion, spelling correction and wildcard
search over generic tries with frequency ranking. It can operate as a
MessagePack IPC server for integration with editors and other tools, or
as a CLI application for testing and debugging.

Indexes are built at startup from a plain text corpus: a character trie
counting word occurrences and a token trie counting sentence
occurrences. Results are ranked by frequency so common words surface
first.

# Usage

Start the server over a corpus:

	lexiserve -corpus corpus.txt

Use debug mode for detailed logging:

	lexiserve -corpus corpus.txt -d

Run in CLI mode for interactive testing:

	lexiserve -corpus corpus.txt -c -limit 10 -prmin 2

The corpus is a UTF-8 text file. Sentences end at '.', '!' or '?';
tokens are lowercased and stripped of accents and edge punctuation
before indexing.

# Configuration

Runtime configuration is managed through a TOML file that supports
server parameters, query engine settings, and CLI defaults:

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60
	enable_filter = true

	[search]
	default_limit = 10
	cache_size = 1024
	max_pattern = 64
	max_edit_len = 32

The config file is automatically created with defaults if it doesn't
exist. A custom path can be given with -config.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in
responses.

Send a completion request:

	{"id": "req1", "p": "hel", "l": 20}

Receive suggestions with frequency ranking:

	{"id": "req1", "s": [{"w": "hello", "r": 1, "f": 412}, {"w": "help", "r": 2, "f": 96}], "c": 2, "t": 145}

The op field selects correction, wildcard search, phrase completion,
stats and config updates:

	{"id": "req2", "op": "correct", "p": "helo"}
	{"id": "req3", "op": "filter", "p": "h?l*"}
	{"id": "req4", "op": "phrase", "p": "thank you"}
	{"id": "req5", "op": "stats"}
	{"id": "req6", "op": "config", "max_limit": 32}

# Server Mode

The default mode starts a MessagePack IPC server that processes lookup
requests from stdin and writes responses to stdout. Logs go to stderr
so they never corrupt the protocol stream.

	srv := server.NewServer(completer, config, configPath)
	err := srv.Start()

The server handles request parsing, validation against the configured
bounds, and response formatting.

# CLI Mode

CLI mode provides an interactive interface for testing and debugging
the lookup engines. It reads lines from stdin and displays suggestions
with frequency information.

	inputHandler := cli.NewInputHandler(completer, minLen, maxLen, limit, noFilter)
	err := inputHandler.Start()

Besides plain prefix completion, slash commands reach the other
engines: /correct, /filter, /phrase and /stats.

# Completion Engine

The core functionality is provided by the suggest package, which
implements generic trie prefix matching with frequency ranking, an
edit-distance-1 corrector and a backtracking wildcard matcher.

	completer := suggest.NewCompleter(words, phrases, cacheSize)
	suggestions := completer.Complete("prefix", 20)

Completion lookups are served through a hot cache of recent prefix
lists which is invalidated precisely when new words are added.

# Command Line Flags

The following flags control application behavior:

	-corpus string
	    Path to the corpus text file to index
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to return (default from config)
	-prmin int
	    Minimum prefix length for suggestions
	-prmax int
	    Maximum prefix length for suggestions
	-no-filter
	    Disable input filtering for debugging
	-config string
	    Custom config file path
	-version
	    Show current version

Input filtering removes numeric-only and repetitive prefixes by default
to improve suggestion relevance, though this can be disabled for
debugging purposes.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/lexitrie/internal/cli"
	"github.com/bastiangx/lexitrie/internal/utils"
	"github.com/bastiangx/lexitrie/pkg/config"
	"github.com/bastiangx/lexitrie/pkg/corpus"
	"github.com/bastiangx/lexitrie/pkg/server"
	"github.com/bastiangx/lexitrie/pkg/suggest"
	"github.com/bastiangx/lexitrie/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "lexiserve"
	gh      = "https://github.com/bastiangx/lexitrie"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	corpusPath := flag.String("corpus", "", "Path to the corpus text file to index")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	minPrefix := flag.Int("prmin", defaultConfig.CLI.DefaultMinLen, "Minimum prefix length for suggestions (1 < n <= prmax)")
	maxPrefix := flag.Int("prmax", defaultConfig.CLI.DefaultMaxLen, "Maximum prefix length for suggestions")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only) - processes raw input (numbers, symbols, etc)")
	configPath := flag.String("config", "", "Custom config file path")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	words, phrases := buildIndexes(*corpusPath)
	completer := suggest.NewCompleter(words, phrases, appConfig.Search.CacheSize)

	// CLI is mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPrefix", *minPrefix,
			"maxPrefix", *maxPrefix,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(completer, *minPrefix, *maxPrefix, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, appConfig, activeConfigPath)

	showStartupInfo(*corpusPath, completer)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// buildIndexes loads and indexes the corpus. With no corpus path the
// indexes start empty and can only be filled over IPC.
func buildIndexes(corpusPath string) (*trie.Trie[int], *trie.Trie[int]) {
	if corpusPath == "" {
		log.Warn("No corpus specified, starting with empty indexes...")
		return nil, nil
	}

	resolved, err := utils.ResolveCorpusPath(corpusPath)
	if err != nil {
		log.Fatalf("Failed to resolve corpus path: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using corpus at: %s", resolved)

	sentences, err := corpus.Load(resolved)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
		os.Exit(1)
	}

	words := corpus.BuildWordIndex(sentences)
	phrases := corpus.BuildPhraseIndex(sentences)
	ws, ps := corpus.Stats(words), corpus.Stats(phrases)
	log.Debugf("Indexed corpus: words=[%d/%d], phrases=[%d/%d]",
		ws.Distinct, ws.Total, ps.Distinct, ps.Total)
	return words, phrases
}

// showVersionInfo prints the styled version banner.
func showVersionInfo() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ LexiTrie ] Trie lookups for completion, correction and wildcard search")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(corpusPath string, completer *suggest.Completer) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := completer.Stats()

	println("===========")
	println(" LexiTrie ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	if corpusPath != "" {
		log.Infof("corpus: ( %s )", corpusPath)
	}
	log.Infof("words: %d | phrases: %d", stats["distinctWords"], stats["distinctPhrases"])
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
