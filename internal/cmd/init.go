package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cxxdoc/cxxdoc/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default cxxdoc.yaml in the current directory",
	Long: `Initialize a cxxdoc.yaml configuration file with sensible defaults.

Examples:
  cxxdoc init          # write cxxdoc.yaml in the current directory
  cxxdoc init --force  # overwrite an existing cxxdoc.yaml`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing cxxdoc.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	path := cwd + string(os.PathSeparator) + config.FileName
	if _, err := os.Stat(path); err == nil {
		if !initForce {
			fmt.Printf("cxxdoc.yaml already exists at %s\n", path)
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing existing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config path: %w", err)
	}

	written, err := config.SaveDefault(cwd)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("Wrote %s\n", written)
	return nil
}
