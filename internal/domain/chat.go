package domain

type ChatRole string

const (
	RoleUser ChatRole = "user"
	RoleSage ChatRole = "model"
)

type ChatMessage struct {
	Role ChatRole
	Text string
}

// Transcript is the append-only message history of one sage session. It
// lives for the duration of a single screen visit and is never persisted.
type Transcript struct {
	messages []ChatMessage
}

func (t *Transcript) Append(message ChatMessage) {
	t.messages = append(t.messages, message)
}

func (t *Transcript) Messages() []ChatMessage {
	out := make([]ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	return len(t.messages)
}
