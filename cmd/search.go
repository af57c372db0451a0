package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanguiano/activador/internal/application"
	"github.com/hanguiano/activador/internal/catalog"
	"github.com/hanguiano/activador/internal/domain"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <sacred|agesta|runes> <purpose>...",
		Short: "Ask the oracle which catalog entry fits a free-text purpose",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.ByKind(domain.CatalogKind(args[0]))
			if err != nil {
				return err
			}

			oracle, err := a.oracle(cmd.Context())
			if err != nil {
				return err
			}

			purpose := strings.Join(args[1:], " ")
			entry, err := application.NewMatcher(oracle).Match(cmd.Context(), purpose, cat)
			if errors.Is(err, domain.ErrNoMatch) {
				fmt.Fprintln(cmd.OutOrStdout(), "El oráculo no encontró una coincidencia para ese propósito.")
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if entry.Coded() {
				fmt.Fprintf(out, "%d · %s\n", entry.Code, entry.Name)
			} else {
				fmt.Fprintln(out, entry.Name)
			}
			if entry.Category != "" {
				fmt.Fprintln(out, entry.Category)
			}
			fmt.Fprintln(out, entry.Description)

			return nil
		},
	}
}
