package cmd

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmhart/mdlite/internal/db"
	"github.com/jmhart/mdlite/internal/parser"
	"github.com/jmhart/mdlite/internal/render"
	"github.com/jmhart/mdlite/internal/ui"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync [dir]",
	Short: "Render all .md files under a directory, skipping unchanged ones",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return RunSync(cmd.OutOrStdout(), dir)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func RunSync(w io.Writer, dir string) error {
	if _, err := os.Stat(".mdlite"); os.IsNotExist(err) {
		return fmt.Errorf("run `mdlite init` first")
	}

	sqlDB, err := db.Open(".mdlite/track.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var matches []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".mdlite" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".md") {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(matches)

	rendered, skipped := 0, 0
	for _, path := range matches {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sum := sha256.Sum256(content)
		hash := hex.EncodeToString(sum[:])
		htmlPath := strings.TrimSuffix(path, ".md") + ".html"

		var known string
		err = sqlDB.QueryRow(`SELECT content_hash FROM documents WHERE source_path = ?`, path).Scan(&known)
		switch {
		case err == sql.ErrNoRows:
			if err := writeHTML(htmlPath, content); err != nil {
				return err
			}
			_, err = sqlDB.Exec(`INSERT INTO documents (source_path, content_hash, html_path) VALUES (?, ?, ?)`,
				path, hash, htmlPath)
			if err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			ui.NewLine(w, path)
			rendered++
		case err != nil:
			return fmt.Errorf("querying %s: %w", path, err)
		case known == hash:
			ui.SkipLine(w, path)
			skipped++
		default:
			if err := writeHTML(htmlPath, content); err != nil {
				return err
			}
			_, err = sqlDB.Exec(`UPDATE documents SET content_hash = ?, html_path = ?, rendered_at = datetime('now') WHERE source_path = ?`,
				hash, htmlPath, path)
			if err != nil {
				return fmt.Errorf("updating %s: %w", path, err)
			}
			ui.DoneLine(w, path)
			rendered++
		}
	}

	ui.SummaryLine(w, rendered, skipped)
	return nil
}

func writeHTML(htmlPath string, content []byte) error {
	html := render.Document(parser.Parse(string(content)))
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", htmlPath, err)
	}
	return nil
}
