package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanguiano/activador/internal/domain"
)

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the Gemini API key",
	}

	cmd.AddCommand(
		newAuthSetKeyCmd(a),
		newAuthStatusCmd(a),
		newAuthClearCmd(a),
	)

	return cmd
}

func newAuthSetKeyCmd(a *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set-key",
		Short: "Store the Gemini API key on disk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.secrets.Put(cmd.Context(), geminiKeyRef, value); err != nil {
				return fmt.Errorf("store API key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "API key guardada.")
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "the API key to store")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newAuthStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether an API key is configured",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := a.secrets.Get(cmd.Context(), geminiKeyRef)
			if errors.Is(err, domain.ErrSecretNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No hay API key configurada.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "API key configurada.")
			return nil
		},
	}
}

func newAuthClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.secrets.Delete(cmd.Context(), geminiKeyRef); err != nil {
				return fmt.Errorf("remove API key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "API key eliminada.")
			return nil
		},
	}
}
