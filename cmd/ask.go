package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanguiano/activador/internal/application"
)

func newAskCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>...",
		Short: "Ask the sage about codes, runes and their use",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oracle, err := a.oracle(cmd.Context())
			if err != nil {
				return err
			}

			reply, err := application.NewSage(oracle).Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderMarkdown(reply.Text))
			return err
		},
	}
}
