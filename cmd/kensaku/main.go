// Package main is the kensaku CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/meito/kensaku/internal/config"
	"github.com/meito/kensaku/internal/query"
	"github.com/meito/kensaku/internal/server"
	"github.com/meito/kensaku/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/kensaku/config.yaml"

// loadConfig loads config from path. When path is the default, it first
// looks for config.yaml in the current directory (for development); if
// that exists it is used. A missing default config is not an error: the
// compiler runs fine on built-in defaults.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return config.Default(), "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "compile":
		runCompile()
	case "version", "--version", "-v":
		fmt.Printf("kensaku version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
		zap.Bool("prefix_match", cfg.Query.PrefixMatchOrDefault()),
	)

	compiler := query.NewCompiler(&cfg.Query)
	srv := server.NewServer(compiler, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runCompile() {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	prefix := fs.Bool("prefix", true, "suffix terms with the prefix-match marker")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: kensaku compile [flags] <query>\n\n")
		fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. Prints the compiled query plan as JSON.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), `
Examples:
  kensaku compile bizen katana
  kensaku compile 'tanto juyo price<500000'
  kensaku compile '"rai kunimitsu" nagasa>=72'
`)
	}
	_ = fs.Parse(os.Args[2:])
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(1)
	}
	raw := strings.Join(fs.Args(), " ")

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	compiler := query.NewCompiler(&cfg.Query).WithPrefixMatch(*prefix)
	plan := compiler.Compile(raw)

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode plan: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func printUsage() {
	fmt.Println(`kensaku - search query compiler for the nihonto catalog

Usage:
  kensaku server [-config path] [-debug]     start the HTTP API
  kensaku compile [flags] <query>            compile a query, print the plan
  kensaku version                            print version
  kensaku help                               show this help`)
}
