package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hanguiano/activador/internal/catalog"
	"github.com/hanguiano/activador/internal/domain"
)

func newCodesCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:       "codes [sacred|agesta|runes]",
		Short:     "List the sacred code, Agesta and rune catalogs",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"sacred", "agesta", "runes"},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogs := a.catalogs
			if len(args) == 1 {
				cat, err := catalog.ByKind(domain.CatalogKind(args[0]))
				if err != nil {
					return err
				}
				catalogs = []domain.Catalog{cat}
			}

			out := cmd.OutOrStdout()
			for i, cat := range catalogs {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printCatalog(out, cat, category)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list entries of this category")
	return cmd
}

func printCatalog(out io.Writer, cat domain.Catalog, category string) {
	fmt.Fprintln(out, cat.Title)

	entries := cat.ByCategory(category)
	if len(entries) == 0 {
		fmt.Fprintln(out, "  (sin entradas)")
		return
	}

	for _, entry := range entries {
		if entry.Coded() {
			fmt.Fprintf(out, "  %4d  %s · %s\n", entry.Code, entry.Name, entry.Category)
			continue
		}
		fmt.Fprintf(out, "  %-10s %s\n", entry.Name, entry.Description)
	}
}
