package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jmhart/mdlite/internal/parser"
	"github.com/jmhart/mdlite/internal/render"
	"github.com/spf13/cobra"
)

var outFlag string

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a Markdown file (or stdin) to HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return RunConvert(cmd.OutOrStdout(), cmd.InOrStdin(), path, outFlag)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write HTML to this file instead of stdout")
	rootCmd.AddCommand(convertCmd)
}

func RunConvert(w io.Writer, stdin io.Reader, path, out string) error {
	var content []byte
	var err error
	if path == "" || path == "-" {
		content, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		content, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}

	html := render.Document(parser.Parse(string(content)))

	if out == "" {
		_, err = io.WriteString(w, html)
		return err
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
