package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hostcost/internal/core"
	"github.com/vovakirdan/hostcost/internal/estimate"
	"github.com/vovakirdan/hostcost/internal/form"
	"github.com/vovakirdan/hostcost/internal/pricing"
)

// EstimatorModel is the Bubble Tea model for the cost estimator form.
// It exclusively owns its form; every key event is applied synchronously in Update.
type EstimatorModel struct {
	form     *form.Form
	pricing  pricing.Model
	config   core.RuntimeConfig
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	quitting bool
}

// NewEstimatorModel creates a model over f priced with m.
func NewEstimatorModel(f *form.Form, m pricing.Model, cfg core.RuntimeConfig) EstimatorModel {
	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	return EstimatorModel{
		form:    f,
		pricing: m,
		config:  cfg,
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    h,
	}
}

// Init initializes the model.
func (m EstimatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m EstimatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m EstimatorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if core.Apply(m.form, m.mapper.MapKey(msg)) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m EstimatorModel) View() string {
	if m.quitting {
		return ""
	}
	return renderEstimator(m)
}

// Result returns a priced snapshot of the current form.
func (m EstimatorModel) Result() estimate.Result {
	return estimate.Price(m.form, m.pricing)
}

// IsQuitting returns true if user requested to quit.
func (m EstimatorModel) IsQuitting() bool {
	return m.quitting
}

// Form returns the form owned by the model.
func (m EstimatorModel) Form() *form.Form {
	return m.form
}

// Run starts the Bubble Tea program over f and returns the final estimate.
func Run(f *form.Form, cfg core.RuntimeConfig) (estimate.Result, error) {
	model := NewEstimatorModel(f, pricing.New(), cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return estimate.Result{}, err
	}

	if em, ok := finalModel.(EstimatorModel); ok {
		return em.Result(), nil
	}
	return model.Result(), nil
}
