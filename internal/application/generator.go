package application

import (
	"context"
	"fmt"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/hanguiano/activador/internal/ports"
)

// Generator produces the two-phase rune guide: instructional text first,
// then the stroke-order diagram. The image request is not sent until the
// text request resolves, so callers get a fast first paint for the text.
type Generator struct {
	oracle ports.Oracle
}

func NewGenerator(oracle ports.Oracle) *Generator {
	return &Generator{oracle: oracle}
}

// Generate walks the full sequence, publishing each phase as it lands.
// A text failure aborts the image phase; an image failure after the text
// succeeded publishes Complete with a nil image and the failure as Reason,
// never discarding the text.
func (g *Generator) Generate(ctx context.Context, rune domain.CatalogEntry, publish func(domain.Generation)) domain.Generation {
	if publish == nil {
		publish = func(domain.Generation) {}
	}

	publish(domain.PendingGeneration())

	text, err := g.GenerateText(ctx, rune)
	if err != nil {
		failed := domain.FailedGeneration(err)
		publish(failed)
		return failed
	}
	publish(domain.TextReadyGeneration(text))

	illustration, err := g.GenerateDiagram(ctx, rune)
	if err != nil {
		partial := domain.CompleteGeneration(text, nil)
		partial.Reason = err
		publish(partial)
		return partial
	}

	complete := domain.CompleteGeneration(text, &illustration)
	publish(complete)
	return complete
}

func (g *Generator) GenerateText(ctx context.Context, rune domain.CatalogEntry) (string, error) {
	text, err := g.oracle.Complete(ctx, guidePrompt(rune))
	if err != nil {
		return "", fmt.Errorf("generate rune guide: %w", err)
	}

	return text, nil
}

func (g *Generator) GenerateDiagram(ctx context.Context, rune domain.CatalogEntry) (domain.Illustration, error) {
	illustration, err := g.oracle.Illustrate(ctx, diagramPrompt(rune))
	if err != nil {
		return domain.Illustration{}, fmt.Errorf("generate stroke diagram: %w", err)
	}

	return illustration, nil
}

func guidePrompt(rune domain.CatalogEntry) string {
	return fmt.Sprintf("Eres un sabio vidente, un maestro de las runas del Futhark antiguo. Tu propósito es guiar a un buscador de sabiduría. Para la runa %s, cuyo significado es %q, crea una guía concisa y mística en formato Markdown. La guía debe incluir:\n\n"+
		"1.  Un breve y poderoso saludo.\n"+
		"2.  Un título \"### Instrucciones de Activación\". Bajo este título, incluye un párrafo con recomendaciones sobre dónde y con qué material dibujar la runa para potenciar su efecto (por ejemplo: sobre papel pergamino con tinta roja, en la palma de la mano con un marcador no permanente, tallado en una vela, etc.).\n"+
		"3.  Un título \"#### Trazo Sugerido\" con una lista numerada que describa, paso a paso, cómo dibujar el símbolo de la runa.",
		rune.Name, rune.Description)
}

func diagramPrompt(rune domain.CatalogEntry) string {
	return fmt.Sprintf("Diagrama minimalista que muestra cómo dibujar la runa nórdica '%s'. Fondo blanco limpio, líneas negras gruesas. Utiliza números y flechas para indicar el orden y la dirección de los trazos, como en una guía de caligrafía. Estilo claro y educativo.", rune.Name)
}
