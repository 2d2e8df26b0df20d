package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cxxdoc/cxxdoc/internal/cache"
	"github.com/cxxdoc/cxxdoc/internal/config"
	"github.com/cxxdoc/cxxdoc/internal/mcpserver"
	"github.com/cxxdoc/cxxdoc/internal/pipeline"
)

var serveCmd = &cobra.Command{
	Use:   "serve [path]",
	Short: "Build the entity tree and serve it over MCP",
	Long: `Build (or load from cache) the documented entity tree, then start an MCP
server exposing cxxdoc_lookup and cxxdoc_list for agent queries: over stdio
when cxxdoc.yaml's serve.address is empty, or over SSE bound to that
address otherwise.

Examples:
  cxxdoc serve             # build then serve using ./cxxdoc.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	path := configPath
	if path == "" {
		path = filepath.Join(dir, config.FileName)
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	baseDir := dir
	if len(args) == 1 {
		baseDir = args[0]
		if !filepath.IsAbs(baseDir) {
			baseDir = filepath.Join(dir, baseDir)
		}
	}

	var rc *cache.Cache
	if cfg.Cache != "" {
		rc, err = cache.Open(filepath.Join(dir, cfg.Cache))
		if err != nil {
			return fmt.Errorf("opening render cache: %w", err)
		}
		defer rc.Close()
	}

	ctx := context.Background()
	result, err := pipeline.Run(ctx, baseDir, cfg.Input, cfg.Groups, rc)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}
	result.Sink.Print(os.Stderr)
	if result.Sink.HasFatal() {
		return fmt.Errorf("build aborted: fatal diagnostics reported")
	}

	return mcpserver.New(result.Root).Serve(ctx, cfg.Serve.Address)
}
