package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/script-popup/internal/catalog"
	"github.com/atomicstack/script-popup/internal/format/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const listDescriptionWidth = 60

func newListCommand() *cobra.Command {
	var grouped bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every script with its description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args)
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.App.ScriptsDir)
			if err != nil {
				return err
			}
			writeList(cmd.OutOrStdout(), cat, grouped)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&grouped, "grouped", "g", false, "group scripts under category headings")
	return cmd
}

func writeList(w io.Writer, cat *catalog.Catalog, grouped bool) {
	if cat.Len() == 0 {
		fmt.Fprintf(w, "No scripts found in %s\n", cat.Root())
		return
	}
	if !grouped {
		rows := [][]string{{"SCRIPT", "DESCRIPTION"}}
		for _, s := range cat.All() {
			rows = append(rows, []string{s.Display(), summary(cat, s)})
		}
		writeRows(w, rows)
		return
	}
	title := cases.Title(language.Und)
	for i, category := range cat.Categories() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, title.String(category))
		var rows [][]string
		for _, s := range cat.Scripts(category) {
			rows = append(rows, []string{"  " + s.Name, summary(cat, s)})
		}
		writeRows(w, rows)
	}
}

func writeRows(w io.Writer, rows [][]string) {
	for _, line := range table.Format(rows, nil) {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// summary is the first line of a script's description, cut to fit a row.
func summary(cat *catalog.Catalog, s catalog.Script) string {
	text, err := cat.Description(s.Path)
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return runewidth.Truncate(line, listDescriptionWidth, "…")
}
