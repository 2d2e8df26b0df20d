// Package cmd contains the cxxdoc CLI command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the current version of cxxdoc.
var Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "cxxdoc",
	Short: "Extract Markdown API documentation from annotated C++ source",
	Long: `cxxdoc scans C++ source for Doxygen-style documentation comments,
builds a tree of documented namespaces, types, functions, and groups, and
renders it as a directory of Markdown pages.

Examples:
  cxxdoc init                 # write a default cxxdoc.yaml
  cxxdoc build                # build docs/ from the current directory
  cxxdoc serve                # serve the built tree over MCP`,
	Version: Version,
}

// Execute runs the root command. Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to cxxdoc.yaml (default: ./cxxdoc.yaml)")
}
