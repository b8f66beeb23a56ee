package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jmhart/mdlite/internal/db"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mdlite tracking in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	_, err := os.Stat(".mdlite")
	dirExists := err == nil
	if err := os.MkdirAll(".mdlite", 0o755); err != nil {
		return fmt.Errorf("creating .mdlite directory: %w", err)
	}
	if dirExists {
		fmt.Fprintln(w, ".mdlite/ already exists")
	} else {
		fmt.Fprintln(w, ".mdlite/ created")
	}

	_, err = os.Stat(".mdlite/track.db")
	dbExists := err == nil
	sqlDB, err := db.Open(".mdlite/track.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintln(w, ".mdlite/track.db already exists")
	} else {
		fmt.Fprintln(w, ".mdlite/track.db created")
	}

	return nil
}
