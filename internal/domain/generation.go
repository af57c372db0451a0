package domain

// Illustration is a decoded inline image returned by the model.
type Illustration struct {
	MIMEType string
	Data     []byte
}

type GenerationPhase int

const (
	GenerationPending GenerationPhase = iota
	GenerationTextReady
	GenerationComplete
	GenerationFailed
)

// Generation is the two-phase result of a rune guide request. Text arrives
// first and must survive a later image failure; a nil Image on a Complete
// generation means the diagram slot failed while the text stands.
type Generation struct {
	Phase  GenerationPhase
	Text   string
	Image  *Illustration
	Reason error
}

func PendingGeneration() Generation {
	return Generation{Phase: GenerationPending}
}

func TextReadyGeneration(text string) Generation {
	return Generation{Phase: GenerationTextReady, Text: text}
}

func CompleteGeneration(text string, image *Illustration) Generation {
	return Generation{Phase: GenerationComplete, Text: text, Image: image}
}

func FailedGeneration(reason error) Generation {
	return Generation{Phase: GenerationFailed, Reason: reason}
}
