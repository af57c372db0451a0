// Package tui is the interactive companion: catalog browsing, the
// activation ritual, the rune guide, the sage chat and the journal, all
// behind one bubbletea program.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hanguiano/activador/internal/application"
	"github.com/hanguiano/activador/internal/domain"
	"github.com/hanguiano/activador/internal/ports"
)

// ritualTarget is the repetition count that completes an activation.
const ritualTarget = 45

type App struct {
	Matcher     *application.Matcher
	Generator   *application.Generator
	Sage        *application.Sage
	Journal     *application.Journal
	Catalogs    []domain.Catalog
	Preferences ports.PreferenceStore
	Logger      *zap.Logger
}

type screen int

const (
	screenHome screen = iota
	screenBrowse
	screenDetail
	screenChat
	screenJournal
	screenJournalForm
	screenFaq
)

type (
	matchResultMsg    struct{ entry domain.CatalogEntry; err error }
	generationMsg     struct{ gen domain.Generation }
	generationDoneMsg struct{}
	sageReplyMsg      struct{ reply domain.ChatMessage }
	journalLoadedMsg  struct {
		entries []domain.JournalEntry
		err     error
	}
	journalSavedMsg   struct{ err error }
	journalDeletedMsg struct{ err error }
	themeSavedMsg     struct{ err error }
)

type journalForm struct {
	activation domain.ActivationType
	inputs     [3]textinput.Model
	focus      int
}

type Model struct {
	ctx    context.Context
	app    App
	log    *zap.Logger
	styles styles
	theme  domain.Theme

	screen screen
	status string
	busy   bool

	homeCursor int

	catalog       domain.Catalog
	categories    []string
	categoryIndex int
	cursor        int
	searching     bool
	search        textinput.Model

	entry        domain.CatalogEntry
	ritualActive bool
	ritualCount  int
	gen          *domain.Generation
	genCh        chan domain.Generation

	transcript *domain.Transcript
	chatInput  textinput.Model

	entries       []domain.JournalEntry
	journalCursor int
	form          journalForm

	spinner  spinner.Model
	progress progress.Model
	width    int
}

func New(ctx context.Context, app App) Model {
	log := app.Logger
	if log == nil {
		log = zap.NewNop()
	}

	theme, err := app.Preferences.Theme(ctx)
	if err != nil || !theme.Valid() {
		theme = detectTheme()
	}

	search := textinput.New()
	search.Placeholder = "Describe tu propósito..."
	search.CharLimit = 200

	chatInput := textinput.New()
	chatInput.Placeholder = "Pregunta al sabio..."
	chatInput.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		app:        app,
		log:        log,
		styles:     newStyles(theme),
		theme:      theme,
		transcript: &domain.Transcript{},
		search:     search,
		chatInput:  chatInput,
		spinner:    sp,
		progress:   progress.New(progress.WithDefaultGradient()),
		width:      80,
	}
}

func Run(ctx context.Context, app App) error {
	p := tea.NewProgram(New(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case matchResultMsg:
		return m.onMatchResult(msg)

	case generationMsg:
		m.gen = &msg.gen
		return m, waitGeneration(m.genCh)

	case generationDoneMsg:
		m.busy = false
		m.genCh = nil
		return m, nil

	case sageReplyMsg:
		m.busy = false
		m.transcript.Append(msg.reply)
		return m, nil

	case journalLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "No se pudo leer el diario."
			m.log.Warn("failed to load journal", zap.Error(msg.err))
			return m, nil
		}
		m.entries = msg.entries
		if m.journalCursor >= len(m.entries) {
			m.journalCursor = max(0, len(m.entries)-1)
		}
		return m, nil

	case journalSavedMsg:
		m.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, application.ErrMissingFields) {
				m.status = "El nombre y la intención son obligatorios."
				return m, nil
			}
			m.status = "No se pudo guardar la entrada."
			m.log.Warn("failed to save journal entry", zap.Error(msg.err))
			return m, nil
		}
		m.screen = screenJournal
		m.status = "Entrada guardada."
		return m, m.loadJournalCmd()

	case journalDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "No se pudo eliminar la entrada."
			m.log.Warn("failed to delete journal entry", zap.Error(msg.err))
			return m, nil
		}
		return m, m.loadJournalCmd()

	case themeSavedMsg:
		if msg.err != nil {
			m.log.Warn("failed to persist theme", zap.Error(msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.onKey(msg)
	}

	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenHome:
		return m.updateHome(msg)
	case screenBrowse:
		return m.updateBrowse(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenChat:
		return m.updateChat(msg)
	case screenJournal:
		return m.updateJournal(msg)
	case screenJournalForm:
		return m.updateJournalForm(msg)
	case screenFaq:
		return m.updateFaq(msg)
	default:
		return m, nil
	}
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	itemCount := len(m.app.Catalogs) + 3

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case "down", "j":
		if m.homeCursor < itemCount-1 {
			m.homeCursor++
		}
	case "t":
		return m.toggleTheme()
	case "enter":
		return m.openHomeItem()
	}

	return m, nil
}

func (m Model) openHomeItem() (tea.Model, tea.Cmd) {
	m.status = ""
	if m.homeCursor < len(m.app.Catalogs) {
		m.catalog = m.app.Catalogs[m.homeCursor]
		m.categories = append([]string{""}, m.catalog.Categories()...)
		m.categoryIndex = 0
		m.cursor = 0
		m.searching = false
		m.search.SetValue("")
		m.screen = screenBrowse
		return m, nil
	}

	switch m.homeCursor - len(m.app.Catalogs) {
	case 0:
		m.screen = screenChat
		cmd := m.chatInput.Focus()
		return m, cmd
	case 1:
		m.screen = screenJournal
		m.busy = true
		return m, tea.Batch(m.loadJournalCmd(), m.spinner.Tick)
	default:
		m.screen = screenFaq
		return m, nil
	}
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		case "enter":
			purpose := m.search.Value()
			if purpose == "" || m.busy {
				return m, nil
			}
			m.busy = true
			m.status = "Consultando al oráculo..."
			return m, tea.Batch(m.matchCmd(purpose), m.spinner.Tick)
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}

	visible := m.visibleEntries()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenHome
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "tab", "right", "l":
		m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
		m.cursor = 0
	case "shift+tab", "left", "h":
		m.categoryIndex = (m.categoryIndex - 1 + len(m.categories)) % len(m.categories)
		m.cursor = 0
	case "/":
		m.searching = true
		m.status = ""
		cmd := m.search.Focus()
		return m, cmd
	case "t":
		return m.toggleTheme()
	case "enter":
		if len(visible) == 0 {
			return m, nil
		}
		return m.openDetail(visible[m.cursor])
	}

	return m, nil
}

func (m Model) openDetail(entry domain.CatalogEntry) (tea.Model, tea.Cmd) {
	m.entry = entry
	m.ritualActive = false
	m.ritualCount = 0
	m.gen = nil
	m.status = ""
	m.screen = screenDetail
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenBrowse
		m.ritualActive = false
	case "t":
		return m.toggleTheme()
	case "a":
		if m.entry.Coded() && !m.ritualActive {
			m.ritualActive = true
			m.ritualCount = 0
			m.status = ""
		}
	case " ", "space", "enter":
		if m.ritualActive && m.ritualCount < ritualTarget {
			m.ritualCount++
			if m.ritualCount == ritualTarget {
				m.ritualActive = false
				m.status = "¡Activación completa! Guarda el resultado en tu diario con 's'."
			}
		}
	case "g":
		if m.catalog.Kind == domain.CatalogRunes && !m.busy {
			return m.startGeneration()
		}
	case "s":
		return m.openJournalForm()
	}

	return m, nil
}

func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	m.busy = true
	m.gen = nil
	m.status = ""

	ch := make(chan domain.Generation, 4)
	m.genCh = ch
	entry := m.entry

	run := func() tea.Msg {
		m.app.Generator.Generate(m.ctx, entry, func(g domain.Generation) { ch <- g })
		close(ch)
		return nil
	}

	return m, tea.Batch(run, waitGeneration(ch), m.spinner.Tick)
}

func waitGeneration(ch <-chan domain.Generation) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		gen, ok := <-ch
		if !ok {
			return generationDoneMsg{}
		}
		return generationMsg{gen: gen}
	}
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.chatInput.Blur()
		m.screen = screenHome
		return m, nil
	case "enter":
		question := m.chatInput.Value()
		if question == "" || m.busy {
			return m, nil
		}
		m.transcript.Append(domain.ChatMessage{Role: domain.RoleUser, Text: question})
		m.chatInput.SetValue("")
		m.busy = true
		return m, tea.Batch(m.askCmd(question), m.spinner.Tick)
	default:
		var cmd tea.Cmd
		m.chatInput, cmd = m.chatInput.Update(msg)
		return m, cmd
	}
}

func (m Model) updateJournal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenHome
	case "up", "k":
		if m.journalCursor > 0 {
			m.journalCursor--
		}
	case "down", "j":
		if m.journalCursor < len(m.entries)-1 {
			m.journalCursor++
		}
	case "t":
		return m.toggleTheme()
	case "d":
		if len(m.entries) == 0 || m.busy {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.deleteJournalCmd(m.entries[m.journalCursor].ID), m.spinner.Tick)
	case "n":
		return m.openJournalForm()
	}

	return m, nil
}

func (m Model) openJournalForm() (tea.Model, tea.Cmd) {
	activation := domain.ActivationSacred
	var name string
	if m.screen == screenDetail {
		activation = domain.ActivationTypeFor(m.catalog.Kind)
		name = m.entry.Name
	}

	var inputs [3]textinput.Model
	labels := [3]string{"Nombre del código o runa", "Intención", "Resultado (opcional)"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = labels[i]
		inputs[i].CharLimit = 300
	}
	inputs[0].SetValue(name)

	m.form = journalForm{activation: activation, inputs: inputs}
	m.status = ""
	m.screen = screenJournalForm
	cmd := m.form.inputs[0].Focus()
	return m, cmd
}

func (m Model) updateJournalForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenJournal
		m.busy = true
		return m, tea.Batch(m.loadJournalCmd(), m.spinner.Tick)
	case "tab", "down":
		return m.focusFormField((m.form.focus + 1) % len(m.form.inputs))
	case "shift+tab", "up":
		return m.focusFormField((m.form.focus - 1 + len(m.form.inputs)) % len(m.form.inputs))
	case "ctrl+t":
		m.form.activation = nextActivation(m.form.activation)
		return m, nil
	case "enter":
		if m.form.focus < len(m.form.inputs)-1 {
			return m.focusFormField(m.form.focus + 1)
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.saveJournalCmd(), m.spinner.Tick)
	default:
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
}

func (m Model) focusFormField(index int) (tea.Model, tea.Cmd) {
	m.form.inputs[m.form.focus].Blur()
	m.form.focus = index
	cmd := m.form.inputs[index].Focus()
	return m, cmd
}

func (m Model) updateFaq(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenHome
	case "t":
		return m.toggleTheme()
	}

	return m, nil
}

func (m Model) onMatchResult(msg matchResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.searching = false
	m.search.Blur()

	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrNoMatch) {
			m.status = "El oráculo no encontró una coincidencia para ese propósito."
			return m, nil
		}
		m.status = application.SageReplyForError(msg.err)
		m.log.Warn("purpose match failed", zap.Error(msg.err))
		return m, nil
	}

	m.search.SetValue("")
	return m.openDetail(msg.entry)
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme == domain.ThemeDark {
		m.theme = domain.ThemeLight
	} else {
		m.theme = domain.ThemeDark
	}
	m.styles = newStyles(m.theme)

	theme := m.theme
	return m, func() tea.Msg {
		return themeSavedMsg{err: m.app.Preferences.SetTheme(m.ctx, theme)}
	}
}

func (m Model) visibleEntries() []domain.CatalogEntry {
	if m.categoryIndex == 0 || m.categoryIndex >= len(m.categories) {
		return m.catalog.Entries
	}

	return m.catalog.ByCategory(m.categories[m.categoryIndex])
}

func (m Model) matchCmd(purpose string) tea.Cmd {
	cat := m.catalog
	return func() tea.Msg {
		entry, err := m.app.Matcher.Match(m.ctx, purpose, cat)
		return matchResultMsg{entry: entry, err: err}
	}
}

func (m Model) askCmd(question string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.app.Sage.Ask(m.ctx, question)
		if err != nil {
			reply = domain.ChatMessage{Role: domain.RoleSage, Text: application.SageReplyForError(err)}
		}
		return sageReplyMsg{reply: reply}
	}
}

func (m Model) loadJournalCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.app.Journal.List(m.ctx)
		return journalLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) saveJournalCmd() tea.Cmd {
	form := m.form
	return func() tea.Msg {
		_, err := m.app.Journal.Add(
			m.ctx,
			form.activation,
			form.inputs[0].Value(),
			form.inputs[1].Value(),
			form.inputs[2].Value(),
		)
		return journalSavedMsg{err: err}
	}
}

func (m Model) deleteJournalCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return journalDeletedMsg{err: m.app.Journal.Delete(m.ctx, id)}
	}
}

func nextActivation(a domain.ActivationType) domain.ActivationType {
	switch a {
	case domain.ActivationSacred:
		return domain.ActivationAgesta
	case domain.ActivationAgesta:
		return domain.ActivationRune
	default:
		return domain.ActivationSacred
	}
}
