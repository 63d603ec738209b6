package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termrain/termrain/internal/errors"
	"github.com/termrain/termrain/internal/render"
	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/store"
)

// statusTimeout is how long transient status messages stay visible.
const statusTimeout = 3 * time.Second

type tickMsg time.Time

type storeMsg settings.Settings

type clearStatusMsg struct{}

// Model is the bubbletea model for the rain view and settings overlay. The
// rain always renders from the draft, so edits preview live; only Commit
// reaches the store.
type Model struct {
	store  *store.Store
	editor *Editor
	field  *render.Field

	// refreshRates is the host capability list fed to the FPS resolver.
	refreshRates []int

	watch  <-chan settings.Settings
	cancel func()

	keys keyMap
	help help.Model

	controls []control
	cursor   int

	handler *errors.TUIHandler

	showSettings bool
	status       string
	statusIsErr  bool

	width  int
	height int
}

// NewModel creates the TUI model. refreshRates may be empty; the resolver
// falls back to its default rate.
func NewModel(st *store.Store, refreshRates []int) *Model {
	editor := NewEditor(st)
	params := render.Resolve(editor.Draft(), refreshRates)
	watch, cancel := st.Watch()
	return &Model{
		store:        st,
		editor:       editor,
		field:        render.NewField(params, 80, 24),
		refreshRates: refreshRates,
		watch:        watch,
		cancel:       cancel,
		keys:         defaultKeyMap(),
		help:         help.New(),
		controls:     buildControls(),
		handler:      errors.NewTUIHandler(nil),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.waitForStore())
}

// tick schedules the next animation frame from the resolved FPS.
func (m *Model) tick() tea.Cmd {
	fps := m.field.Params().FPS
	if fps < 1 {
		fps = render.FallbackFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForStore forwards committed records from the store's watch stream.
func (m *Model) waitForStore() tea.Cmd {
	return func() tea.Msg {
		current, ok := <-m.watch
		if !ok {
			return nil
		}
		return storeMsg(current)
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.field.Resize(msg.Width, msg.Height-1)
		return m, nil

	case tickMsg:
		fps := m.field.Params().FPS
		if fps < 1 {
			fps = render.FallbackFPS
		}
		m.field.Step(1 / float64(fps))
		return m, m.tick()

	case storeMsg:
		m.editor.Refresh(settings.Settings(msg))
		m.applyDraft()
		return m, m.waitForStore()

	case clearStatusMsg:
		m.handler.Clear()
		m.status = ""
		m.statusIsErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Settings):
		m.showSettings = !m.showSettings
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.showSettings {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.controls)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Decrease):
		m.editor.Apply(m.controls[m.cursor].decrease(m.editor.Draft()))
		m.applyDraft()
	case key.Matches(msg, m.keys.Increase):
		m.editor.Apply(m.controls[m.cursor].increase(m.editor.Draft()))
		m.applyDraft()
	case key.Matches(msg, m.keys.Reset):
		m.editor.ResetToDefaults()
		m.applyDraft()
		return m, m.setStatus("Draft reset to defaults", false)
	case key.Matches(msg, m.keys.Commit):
		if err := m.editor.Commit(); err != nil {
			// The draft stays dirty; the failure must be visible.
			return m, m.setStatus("Save failed: "+err.Error(), true)
		}
		return m, m.setStatus("Settings saved", false)
	case key.Matches(msg, m.keys.Revert):
		m.editor.Revert()
		m.applyDraft()
		m.showSettings = false
		return m, m.setStatus("Changes discarded", false)
	}
	return m, nil
}

// applyDraft recomputes the renderer parameter bag from the current draft.
func (m *Model) applyDraft() {
	m.field.SetParams(render.Resolve(m.editor.Draft(), m.refreshRates))
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	if isErr {
		m.handler.Error(text)
	} else {
		m.handler.Success(text)
	}
	if msg, ok := m.handler.Latest(); ok {
		m.status = msg.Text
		m.statusIsErr = msg.Type == errors.MessageTypeError
	}
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
