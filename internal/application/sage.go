package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/hanguiano/activador/internal/ports"
)

const personaInstruction = "Eres un sabio maestro, experto en la historia y el uso de Códigos Sagrados numéricos, Códigos de Agesta y Runas del Futhark antiguo. Tu tono es paciente, claro y alentador. Responde a las preguntas de los usuarios de forma concisa pero completa, basándote en conocimientos esotéricos y espirituales. No ofrezcas consejos médicos ni financieros, en su lugar, sugiere que estas herramientas son un complemento espiritual a la ayuda profesional."

// Sage is the chat persona. Each turn is stateless from the model's point
// of view: only the persona instruction and the new question travel, the
// transcript stays on the user's side.
type Sage struct {
	oracle ports.Oracle
}

func NewSage(oracle ports.Oracle) *Sage {
	return &Sage{oracle: oracle}
}

func (s *Sage) Ask(ctx context.Context, question string) (domain.ChatMessage, error) {
	raw, err := s.oracle.Complete(ctx, fmt.Sprintf("%s\n\nPregunta del usuario: %s", personaInstruction, question))
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("consult sage: %w", err)
	}

	return domain.ChatMessage{Role: domain.RoleSage, Text: raw}, nil
}

// Converse appends the user question to the transcript before the call
// resolves, then appends either the sage reply or a localized error
// message. The transcript only ever grows.
func (s *Sage) Converse(ctx context.Context, transcript *domain.Transcript, question string) domain.ChatMessage {
	transcript.Append(domain.ChatMessage{Role: domain.RoleUser, Text: question})

	reply, err := s.Ask(ctx, question)
	if err != nil {
		reply = domain.ChatMessage{Role: domain.RoleSage, Text: SageReplyForError(err)}
	}

	transcript.Append(reply)
	return reply
}

// SageReplyForError translates a failure into the message shown in the
// transcript. Credential problems get their own wording so the user knows
// to reselect the key instead of rephrasing.
func SageReplyForError(err error) string {
	if errors.Is(err, domain.ErrCredentialInvalid) || errors.Is(err, domain.ErrCredentialMissing) {
		return "La API Key no es válida. Por favor, vuelve a la pantalla principal y selecciona una clave válida para continuar."
	}

	return "Lo siento, ha ocurrido un error al consultar al sabio. Por favor, intenta de nuevo."
}
