package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cxxdoc/cxxdoc/internal/cache"
	"github.com/cxxdoc/cxxdoc/internal/config"
	"github.com/cxxdoc/cxxdoc/internal/emit"
	"github.com/cxxdoc/cxxdoc/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Build Markdown documentation from C++ source",
	Long: `Discover C++ translation units, run the syntax query, translate their
documentation comments, resolve groups, and render a tree of Markdown pages.

Examples:
  cxxdoc build            # build using ./cxxdoc.yaml (or its defaults)
  cxxdoc build ./src      # discover under ./src instead of the working directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
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

	result, err := pipeline.Run(context.Background(), baseDir, cfg.Input, cfg.Groups, rc)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}

	result.Sink.Print(os.Stderr)
	if result.Sink.HasFatal() {
		return fmt.Errorf("build aborted: fatal diagnostics reported")
	}

	out := cfg.Output
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	if err := emit.New(out).Emit(result.Root); err != nil {
		return fmt.Errorf("emitting documentation: %w", err)
	}

	fmt.Printf("wrote documentation to %s\n", out)
	return nil
}
