package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hanguiano/activador/internal/adapters/render/markup"
	"github.com/hanguiano/activador/internal/domain"
)

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenHome:
		body = m.viewHome()
	case screenBrowse:
		body = m.viewBrowse()
	case screenDetail:
		body = m.viewDetail()
	case screenChat:
		body = m.viewChat()
	case screenJournal:
		body = m.viewJournal()
	case screenJournalForm:
		body = m.viewJournalForm()
	case screenFaq:
		body = m.viewFaq()
	}

	lines := []string{body}
	if m.busy {
		lines = append(lines, m.styles.status.Render(m.spinner.View()+" "+m.statusOrDefault("Consultando...")))
	} else if m.status != "" {
		lines = append(lines, m.styles.status.Render(m.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) statusOrDefault(fallback string) string {
	if m.status != "" {
		return m.status
	}
	return fallback
}

func (m Model) viewHome() string {
	lines := []string{
		m.styles.title.Render("Activador Energético"),
		m.styles.header.Render("Códigos sagrados, runas y un sabio a tu disposición."),
		"",
	}

	labels := make([]string, 0, len(m.app.Catalogs)+3)
	for _, cat := range m.app.Catalogs {
		labels = append(labels, cat.Title)
	}
	labels = append(labels, "Consultar al Sabio", "Mi Diario", "Preguntas Frecuentes")

	for i, label := range labels {
		lines = append(lines, m.renderMenuItem(label, i == m.homeCursor))
	}

	lines = append(lines, "", m.styles.faint.Render("↑/↓ mover · enter abrir · t tema · q salir"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderMenuItem(label string, selected bool) string {
	if selected {
		return m.styles.selected.Render("> " + label)
	}
	return m.styles.item.Render("  " + label)
}

func (m Model) viewBrowse() string {
	lines := []string{
		m.styles.title.Render(m.catalog.Title),
		m.styles.header.Render(m.categoryLabel()),
	}

	if m.searching {
		lines = append(lines, m.styles.section.Render(m.search.View()))
	}

	visible := m.visibleEntries()
	if len(visible) == 0 {
		lines = append(lines, m.styles.faint.Render("No hay entradas en esta categoría."))
	}

	for i, entry := range visible {
		lines = append(lines, m.renderEntryLine(entry, i == m.cursor))
	}

	lines = append(lines, "", m.styles.faint.Render("↑/↓ mover · tab categoría · / buscar con IA · enter abrir · esc volver"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) categoryLabel() string {
	if m.categoryIndex == 0 || m.categoryIndex >= len(m.categories) {
		return "Categoría: todas"
	}
	return "Categoría: " + m.categories[m.categoryIndex]
}

func (m Model) renderEntryLine(entry domain.CatalogEntry, selected bool) string {
	label := entry.Name
	if entry.Coded() {
		label = fmt.Sprintf("%s %s", m.styles.code.Render(fmt.Sprintf("%4d", entry.Code)), entry.Name)
	}

	if selected {
		return m.styles.selected.Render("> ") + label
	}
	return "  " + label
}

func (m Model) viewDetail() string {
	lines := []string{m.styles.title.Render(m.entry.Name)}
	if m.entry.Coded() {
		lines[0] = m.styles.title.Render(fmt.Sprintf("%s · Código %d", m.entry.Name, m.entry.Code))
	}
	if m.entry.Category != "" {
		lines = append(lines, m.styles.header.Render(m.entry.Category))
	}
	lines = append(lines, "", m.styles.detail.Render(wrap(m.entry.Description, m.width-2)))

	if m.entry.Coded() {
		lines = append(lines, m.styles.section.Render(m.viewRitual()))
	}
	if m.catalog.Kind == domain.CatalogRunes {
		lines = append(lines, m.styles.section.Render(m.viewGeneration()))
	}

	lines = append(lines, "", m.styles.faint.Render(m.detailHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) detailHelp() string {
	switch {
	case m.ritualActive:
		return "espacio repetir · esc volver"
	case m.catalog.Kind == domain.CatalogRunes:
		return "g generar guía · s guardar en diario · esc volver"
	default:
		return "a iniciar activación · s guardar en diario · esc volver"
	}
}

// viewRitual renders the repetition counter. The tradition asks for 45
// conscious repetitions to activate a code.
func (m Model) viewRitual() string {
	if !m.ritualActive && m.ritualCount == 0 {
		return m.styles.faint.Render("Repite el código 45 veces para activarlo.")
	}

	bar := m.progress.ViewAs(float64(m.ritualCount) / float64(ritualTarget))
	counter := fmt.Sprintf("%d / %d", m.ritualCount, ritualTarget)
	if m.ritualCount >= ritualTarget {
		counter = m.styles.selected.Render(counter + " · completado")
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, counter)
}

func (m Model) viewGeneration() string {
	if m.gen == nil {
		return m.styles.faint.Render("Pulsa 'g' para pedir la guía de activación al oráculo.")
	}

	switch m.gen.Phase {
	case domain.GenerationPending:
		return m.styles.faint.Render("Invocando la guía...")
	case domain.GenerationFailed:
		return m.styles.warning.Render("No se pudo generar la guía. Intenta de nuevo.")
	}

	lines := []string{m.renderGuide(m.gen.Text)}
	switch {
	case m.gen.Image != nil:
		lines = append(lines, "", m.styles.faint.Render(fmt.Sprintf(
			"Diagrama de trazo disponible (%s, %d KB). Expórtalo con: activador rune %q --out trazo.png",
			m.gen.Image.MIMEType, len(m.gen.Image.Data)/1024, m.entry.Name)))
	case m.gen.Phase == domain.GenerationComplete:
		lines = append(lines, "", m.styles.warning.Render("El diagrama de trazo no está disponible esta vez."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderGuide styles the generator's constrained markup block by block.
func (m Model) renderGuide(text string) string {
	var lines []string
	for _, block := range markup.Parse(text) {
		switch block := block.(type) {
		case markup.Heading:
			lines = append(lines, m.styles.selected.Render(block.Text))
		case markup.OrderedList:
			for i, item := range block.Items {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, m.emphasize(item)))
			}
		case markup.Paragraph:
			lines = append(lines, wrap(m.emphasize(block.Text), m.width-2))
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) emphasize(text string) string {
	var b strings.Builder
	for _, span := range markup.EmphasisSpans(text) {
		if span.Emphasis {
			b.WriteString(m.styles.user.Render(span.Text))
			continue
		}
		b.WriteString(span.Text)
	}

	return b.String()
}

func (m Model) viewChat() string {
	lines := []string{
		m.styles.title.Render("El Sabio"),
		m.styles.header.Render("Pregunta sobre códigos, runas y su uso."),
		"",
	}

	for _, message := range m.transcript.Messages() {
		prefix := m.styles.user.Render("Tú: ")
		body := message.Text
		if message.Role == domain.RoleSage {
			prefix = m.styles.sage.Render("Sabio: ")
			body = m.emphasize(body)
		}
		lines = append(lines, prefix+wrap(body, m.width-8))
	}

	lines = append(lines, "", m.chatInput.View(), m.styles.faint.Render("enter enviar · esc volver"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewJournal() string {
	lines := []string{
		m.styles.title.Render("Mi Diario"),
		m.styles.header.Render(fmt.Sprintf("%d entradas", len(m.entries))),
		"",
	}

	if len(m.entries) == 0 {
		lines = append(lines, m.styles.faint.Render("Aún no has registrado ninguna activación."))
	}

	for i, entry := range m.entries {
		lines = append(lines, m.renderJournalEntry(entry, i == m.journalCursor))
	}

	lines = append(lines, "", m.styles.faint.Render("n nueva entrada · d eliminar · esc volver"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderJournalEntry(entry domain.JournalEntry, selected bool) string {
	header := fmt.Sprintf("%s · %s · %s", entry.Date, entry.Type, entry.Name)
	if selected {
		header = m.styles.selected.Render("> " + header)
	} else {
		header = m.styles.item.Render("  " + header)
	}

	detail := "  " + m.styles.faint.Render("Intención: "+entry.Intention)
	if entry.Result != "" {
		detail += "\n  " + m.styles.faint.Render("Resultado: "+entry.Result)
	}

	return header + "\n" + detail
}

func (m Model) viewJournalForm() string {
	lines := []string{
		m.styles.title.Render("Nueva entrada"),
		m.styles.header.Render("Tipo: " + string(m.form.activation) + "  (ctrl+t cambia)"),
		"",
	}

	for i := range m.form.inputs {
		lines = append(lines, m.form.inputs[i].View())
	}

	lines = append(lines, "", m.styles.faint.Render("tab siguiente campo · enter guardar · esc cancelar"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

var faqEntries = []struct {
	question string
	answer   string
}{
	{
		question: "¿Qué son los Códigos Sagrados?",
		answer:   "Son secuencias numéricas canalizadas que actúan como llaves energéticas. Cada código está asociado a un propósito concreto, como la abundancia o la protección.",
	},
	{
		question: "¿Cómo se activa un código?",
		answer:   "Repite el número 45 veces, en voz alta o mentalmente, manteniendo la intención presente. Puedes ayudarte contando con los dedos o con semillas.",
	},
	{
		question: "¿Qué son los Códigos de Agesta?",
		answer:   "Son códigos canalizados por José Gabriel Agesta. Se trabajan igual que los Códigos Sagrados, con 45 repeticiones y una intención clara.",
	},
	{
		question: "¿Qué son las runas?",
		answer:   "Son los símbolos del alfabeto Futhark antiguo. Cada runa condensa una energía arquetípica y se activa dibujándola mientras se medita en su significado.",
	},
	{
		question: "¿Dónde se guardan mis datos?",
		answer:   "Tu diario y tus preferencias se guardan únicamente en este equipo. Solo las consultas al sabio y al oráculo viajan al modelo.",
	},
}

func (m Model) viewFaq() string {
	lines := []string{m.styles.title.Render("Preguntas Frecuentes"), ""}

	for _, entry := range faqEntries {
		lines = append(lines,
			m.styles.selected.Render(entry.question),
			m.styles.detail.Render(wrap(entry.answer, m.width-2)),
			"",
		)
	}

	lines = append(lines, m.styles.faint.Render("esc volver"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// wrap breaks text on word boundaries to fit the given width, keeping
// the existing line structure intact.
func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, width)
	}

	return strings.Join(lines, "\n")
}

func wrapLine(line string, width int) string {
	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(line) {
		if lineLen > 0 && lineLen+1+len(word) > width {
			b.WriteByte('\n')
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}

	return b.String()
}
