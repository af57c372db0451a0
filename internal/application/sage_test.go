package application

import (
	"context"
	"errors"
	"testing"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSageAskPrefixesPersona(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{completeFn: func(_ context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "Eres un sabio maestro")
		assert.Contains(t, prompt, "Pregunta del usuario: ¿Qué son los Códigos Sagrados?")
		return "Son secuencias numéricas.", nil
	}}

	reply, err := NewSage(oracle).Ask(context.Background(), "¿Qué son los Códigos Sagrados?")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSage, reply.Role)
	assert.Equal(t, "Son secuencias numéricas.", reply.Text)
}

func TestConverseAppendsOptimisticallyAndGrowsOnly(t *testing.T) {
	t.Parallel()

	var transcript domain.Transcript
	oracle := &fakeOracle{completeFn: func(context.Context, string) (string, error) {
		return "**Fehu** es la runa de la riqueza.", nil
	}}
	sage := NewSage(oracle)

	sage.Converse(context.Background(), &transcript, "Háblame de Fehu")

	messages := transcript.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, domain.RoleUser, messages[0].Role)
	assert.Equal(t, "Háblame de Fehu", messages[0].Text)
	assert.Equal(t, domain.RoleSage, messages[1].Role)

	sage.Converse(context.Background(), &transcript, "¿Y Uruz?")
	assert.Equal(t, 4, transcript.Len())
}

func TestConverseFailureAppendsLocalizedReply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		failure  error
		wantText string
	}{
		{
			name:     "credential failure instructs reselecting the key",
			failure:  domain.ErrCredentialInvalid,
			wantText: "La API Key no es válida. Por favor, vuelve a la pantalla principal y selecciona una clave válida para continuar.",
		},
		{
			name:     "generic failure invites retrying",
			failure:  errors.New("timeout"),
			wantText: "Lo siento, ha ocurrido un error al consultar al sabio. Por favor, intenta de nuevo.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var transcript domain.Transcript
			oracle := &fakeOracle{completeFn: func(context.Context, string) (string, error) {
				return "", tt.failure
			}}

			reply := NewSage(oracle).Converse(context.Background(), &transcript, "¿Hola?")

			assert.Equal(t, domain.RoleSage, reply.Role)
			assert.Equal(t, tt.wantText, reply.Text)
			// The failed turn still shows the question plus the error reply.
			assert.Equal(t, 2, transcript.Len())
		})
	}
}
