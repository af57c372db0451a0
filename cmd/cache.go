package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanguiano/activador/internal/adapters/cache"
)

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the offline asset cache",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "warm",
			Short: "Download every manifest asset into the cache",
			RunE: func(cmd *cobra.Command, _ []string) error {
				proxy := a.proxy()
				if err := proxy.Install(cmd.Context()); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d assets en caché.\n", len(proxy.Keys(cmd.Context())))
				return nil
			},
		},
		&cobra.Command{
			Use:   "purge",
			Short: "Remove entries left over from older cache versions",
			RunE: func(cmd *cobra.Command, _ []string) error {
				purged, err := a.proxy().Activate(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d entradas obsoletas eliminadas.\n", purged)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the cache version and entry count",
			RunE: func(cmd *cobra.Command, _ []string) error {
				proxy := a.proxy()
				fmt.Fprintf(cmd.OutOrStdout(), "versión: %s\nentradas: %d\n", cache.DefaultVersion, len(proxy.Keys(cmd.Context())))
				return nil
			},
		},
	)

	return cmd
}
