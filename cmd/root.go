package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "activador",
		Short:         "Activador Energético: códigos sagrados, runas y un sabio en tu terminal",
		Long:          "activador browses the sacred code, Agesta and rune catalogs, matches free-text purposes to entries through the Gemini oracle, generates rune activation guides, keeps an activation journal and caches remote assets for offline use.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newCodesCmd(app),
		newSearchCmd(app),
		newRuneCmd(app),
		newAskCmd(app),
		newJournalCmd(app),
		newCacheCmd(app),
		newAuthCmd(app),
		newUICmd(app),
	)

	return rootCmd
}
