package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanguiano/activador/internal/adapters/render/markup"
	"github.com/hanguiano/activador/internal/application"
	"github.com/hanguiano/activador/internal/catalog"
)

func newRuneCmd(a *app) *cobra.Command {
	var (
		outPath  string
		htmlPath string
		textOnly bool
	)

	cmd := &cobra.Command{
		Use:   "rune <name>",
		Short: "Generate the activation guide and stroke diagram for a rune",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := catalog.Runes().FindByName(args[0])
			if !ok {
				return fmt.Errorf("unknown rune %q", args[0])
			}

			oracle, err := a.oracle(cmd.Context())
			if err != nil {
				return err
			}
			generator := application.NewGenerator(oracle)

			text, err := generator.GenerateText(cmd.Context(), entry)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMarkdown(text))

			if htmlPath != "" {
				if err := os.WriteFile(htmlPath, []byte(markup.ToHTML(text)), 0o644); err != nil {
					return fmt.Errorf("write html file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Guía exportada a %s\n", htmlPath)
			}

			if textOnly {
				return nil
			}

			illustration, err := generator.GenerateDiagram(cmd.Context(), entry)
			if err != nil {
				// The guide text stands on its own; a lost diagram is a
				// partial result, not a failure.
				a.logger.Warn("stroke diagram generation failed", zap.Error(err))
				fmt.Fprintln(cmd.ErrOrStderr(), "El diagrama de trazo no está disponible esta vez.")
				return nil
			}

			if outPath == "" {
				outPath = strings.ToLower(entry.Name) + diagramExtension(illustration.MIMEType)
			}
			if err := os.WriteFile(outPath, illustration.Data, 0o644); err != nil {
				return fmt.Errorf("write diagram file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Diagrama guardado en %s\n", outPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "write the stroke diagram to this file")
	cmd.Flags().StringVar(&htmlPath, "html", "", "export the guide as HTML to this file")
	cmd.Flags().BoolVar(&textOnly, "text-only", false, "skip the stroke diagram")
	return cmd
}

func diagramExtension(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// renderMarkdown pretty-prints model output for the terminal, falling
// back to the raw text when the renderer cannot be built.
func renderMarkdown(text string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(rendered, "\n")
}
