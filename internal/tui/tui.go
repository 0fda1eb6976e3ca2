package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/counter/internal/model"
	"github.com/idilsaglam/counter/internal/ui"
	"github.com/idilsaglam/counter/internal/widget"
)

// Options configure the interactive program.
type Options struct {
	AltScreen bool
	Mouse     bool
	Seed      model.State
	Logger    *log.Logger
}

// buttons in tab order
var focusOrder = []string{widget.HookDecrementButton, widget.HookIncrementButton}

type modelTUI struct {
	widget *widget.Widget
	keys   keyMap
	help   help.Model
	focus  int
	log    *log.Logger
}

func newModel(opt Options) modelTUI {
	logger := opt.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	w := widget.New(
		widget.WithState(opt.Seed),
		widget.WithOnChange(func(prev, next model.State) {
			if prev.Mode() != next.Mode() {
				logger.WithField("mode", next.Mode().String()).Info("mode switched")
			}
			logger.WithFields(log.Fields{
				"from":    prev.Counter,
				"counter": next.Counter,
				"error":   next.Error,
				"mode":    next.Mode().String(),
			}).Debug("counter changed")
		}),
	)
	h := help.New()
	h.Styles.ShortKey = ui.Current().Accent
	h.Styles.FullKey = ui.Current().Accent
	return modelTUI{
		widget: w,
		keys:   defaultKeys(),
		help:   h,
		log:    logger,
	}
}

// Run starts the Bubble Tea program and returns the state it ended in.
func Run(opt Options) (model.State, error) {
	m := newModel(opt)

	screen := screenModes(opt)
	if opt.Mouse && !screen.mouse {
		m.log.Warn("mouse disabled: it needs the alternate screen")
	}
	var popts []tea.ProgramOption
	if screen.altScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if screen.mouse {
		popts = append(popts, tea.WithMouseCellMotion())
	}

	m.log.WithField("seed", opt.Seed.Counter).Info("widget mounted")
	p := tea.NewProgram(m, popts...)
	finalModel, err := p.Run()
	if err != nil {
		return m.widget.State(), err
	}
	final := m.widget.State()
	if fm, ok := finalModel.(modelTUI); ok {
		final = fm.widget.State()
	}
	m.log.WithField("counter", final.Counter).Info("widget unmounted")
	return final, nil
}

type screenMode struct {
	altScreen bool
	mouse     bool
}

// screenModes resolves the terminal modes for a program. Button zones are
// measured from the top-left of the screen, which only holds inline when
// the view owns the alternate screen, so mouse mode requires it.
func screenModes(opt Options) screenMode {
	return screenMode{
		altScreen: opt.AltScreen,
		mouse:     opt.Mouse && opt.AltScreen,
	}
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Decrement):
			m.press(widget.HookDecrementButton)
		case key.Matches(msg, m.keys.Increment):
			m.press(widget.HookIncrementButton)
		case key.Matches(msg, m.keys.Next):
			m.focus = (m.focus + 1) % len(focusOrder)
		case key.Matches(msg, m.keys.Prev):
			m.focus = (m.focus + len(focusOrder) - 1) % len(focusOrder)
		case key.Matches(msg, m.keys.Press):
			m.press(focusOrder[m.focus])
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		_, zones := layout(m.widget.Render(), focusOrder[m.focus])
		for _, z := range zones {
			if z.contains(msg.X, msg.Y) {
				m.press(z.hook)
				for i, h := range focusOrder {
					if h == z.hook {
						m.focus = i
					}
				}
				break
			}
		}
		return m, nil
	}
	return m, nil
}

// press clicks the button carrying hook in the current render.
func (m modelTUI) press(hook string) {
	if !m.widget.Render().First(hook).Click() {
		m.log.WithField("hook", hook).Warn("no handler bound")
	}
}

func (m modelTUI) View() string {
	content, _ := layout(m.widget.Render(), focusOrder[m.focus])
	return content + "\n" + m.help.View(m.keys)
}
