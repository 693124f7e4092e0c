package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dailydo/internal/app"
)

var (
	configPath string
	dataFile   string
)

var rootCmd = &cobra.Command{
	Use:          "dailydo",
	Short:        "Single-user daily to-do list server",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		app.Run(configPath)
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty todo document",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initDocument(dataFile); err != nil {
			return err
		}
		fmt.Printf("created %s\n", dataFile)
		return nil
	},
}

// initDocument seeds an empty document at path. An existing file is never
// overwritten.
func initDocument(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte("{}\n"), 0644)
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "config/config.yaml", "path to the config file")
	initCmd.Flags().StringVar(&dataFile, "file", "data/todo.json", "path to the todo document")
	rootCmd.AddCommand(serveCmd, initCmd)
}
