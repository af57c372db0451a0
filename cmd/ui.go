package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hanguiano/activador/internal/adapters/tui"
	"github.com/hanguiano/activador/internal/application"
)

func newUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive companion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			oracle, err := a.oracle(cmd.Context())
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), tui.App{
				Matcher:     application.NewMatcher(oracle),
				Generator:   application.NewGenerator(oracle),
				Sage:        application.NewSage(oracle),
				Journal:     a.journal,
				Catalogs:    a.catalogs,
				Preferences: a.preferences,
				Logger:      a.logger,
			})
		},
	}
}
