package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jmhart/mdlite/internal/db"
	"github.com/jmhart/mdlite/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type docRow struct {
	path       string
	renderedAt string
}

func RunList(w io.Writer) error {
	if _, err := os.Stat(".mdlite"); os.IsNotExist(err) {
		return fmt.Errorf("run `mdlite init` first")
	}

	sqlDB, err := db.Open(".mdlite/track.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`SELECT source_path, rendered_at FROM documents ORDER BY source_path`)
	if err != nil {
		return fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var results []docRow
	for rows.Next() {
		var r docRow
		if err := rows.Scan(&r.path, &r.renderedAt); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if len(results) == 0 {
		return nil
	}

	pathWidth := 0
	for _, r := range results {
		if len(r.path) > pathWidth {
			pathWidth = len(r.path)
		}
	}
	for _, r := range results {
		ui.ListRow(w, r.path, r.renderedAt, pathWidth)
	}

	return nil
}
