package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanguiano/activador/internal/domain"
)

func newJournalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Manage the activation journal",
	}

	cmd.AddCommand(
		newJournalListCmd(a),
		newJournalAddCmd(a),
		newJournalDeleteCmd(a),
	)

	return cmd
}

func newJournalListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.journal.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "El diario está vacío.")
				return nil
			}

			for _, entry := range entries {
				fmt.Fprintf(out, "%s\n  %s · %s · %s\n  Intención: %s\n", entry.ID, entry.Date, entry.Type, entry.Name, entry.Intention)
				if entry.Result != "" {
					fmt.Fprintf(out, "  Resultado: %s\n", entry.Result)
				}
			}

			return nil
		},
	}
}

func newJournalAddCmd(a *app) *cobra.Command {
	var (
		activation string
		name       string
		intention  string
		result     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an activation outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			activationType, err := parseActivationType(activation)
			if err != nil {
				return err
			}

			entry, err := a.journal.Add(cmd.Context(), activationType, name, intention, result)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Entrada %s guardada.\n", entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&activation, "type", "sacred", "activation type: sacred, agesta or rune")
	cmd.Flags().StringVar(&name, "name", "", "code or rune name")
	cmd.Flags().StringVar(&intention, "intention", "", "the intention behind the activation")
	cmd.Flags().StringVar(&result, "result", "", "observed result, if any")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("intention")

	return cmd
}

func newJournalDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one journal entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.journal.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Entrada eliminada.")
			return nil
		},
	}
}

func parseActivationType(value string) (domain.ActivationType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sacred", "sagrado":
		return domain.ActivationSacred, nil
	case "agesta":
		return domain.ActivationAgesta, nil
	case "rune", "runa":
		return domain.ActivationRune, nil
	}

	if t := domain.ActivationType(value); t.Valid() {
		return t, nil
	}

	return "", fmt.Errorf("unknown activation type %q", value)
}
