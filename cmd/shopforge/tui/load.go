package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marshallshelly/shopforge/pkg/store"
)

// LoadMode represents the current mode of the load UI
type LoadMode int

const (
	ModeConfirm LoadMode = iota
	ModeLoading
	ModeComplete
	ModeError
)

// LoadModel is the Bubbletea model for the interactive load step
type LoadModel struct {
	mode    LoadMode
	confirm ConfirmationDialog
	spin    spinner.Model
	dbPath  string
	dataDir string
	counts  []store.TableCount
	err     error
}

// NewLoadModel creates a new load UI model
func NewLoadModel(dbPath, dataDir string) LoadModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = infoStyle

	return LoadModel{
		mode:    ModeConfirm,
		spin:    s,
		dbPath:  dbPath,
		dataDir: dataDir,
		confirm: NewConfirmationDialog(
			"Load Datasets",
			fmt.Sprintf("This drops and recreates all tables in %s. Continue?", dbPath),
		),
	}
}

// Init initializes the model
func (m LoadModel) Init() tea.Cmd {
	return nil
}

// Messages
type loadDoneMsg struct {
	counts []store.TableCount
	err    error
}

// Commands
func loadCmd(dbPath, dataDir string) tea.Cmd {
	return func() tea.Msg {
		db, err := store.Open(dbPath)
		if err != nil {
			return loadDoneMsg{err: fmt.Errorf("failed to open database: %w", err)}
		}
		defer db.Close()

		counts, err := store.Load(context.Background(), db, dataDir)
		return loadDoneMsg{counts: counts, err: err}
	}
}

// Update handles messages
func (m LoadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case ModeConfirm:
			switch msg.String() {
			case "left", "h":
				m.confirm.YesSelected = true
			case "right", "l":
				m.confirm.YesSelected = false
			case "enter":
				if m.confirm.YesSelected {
					m.mode = ModeLoading
					return m, tea.Batch(m.spin.Tick, loadCmd(m.dbPath, m.dataDir))
				}
				return m, tea.Quit
			case "ctrl+c", "q":
				return m, tea.Quit
			}
		case ModeComplete, ModeError:
			switch msg.String() {
			case "enter", "q", "ctrl+c":
				return m, tea.Quit
			}
		case ModeLoading:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		}
		return m, nil

	case loadDoneMsg:
		if msg.err != nil {
			m.mode = ModeError
			m.err = msg.err
		} else {
			m.mode = ModeComplete
			m.counts = msg.counts
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI
func (m LoadModel) View() string {
	switch m.mode {
	case ModeConfirm:
		return m.confirm.View()

	case ModeLoading:
		return fmt.Sprintf("\n %s Loading datasets into %s...\n", m.spin.View(), m.dbPath)

	case ModeComplete:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Load Complete"))
		b.WriteString("\n\n")
		total := 0
		for _, c := range m.counts {
			b.WriteString(fmt.Sprintf("  %s %s: %d rows\n", successStyle.Render("✓"), c.Table, c.Rows))
			total += c.Rows
		}
		b.WriteString(mutedStyle.Render(fmt.Sprintf("\n%d rows total", total)))
		b.WriteString(helpStyle.Render("\nenter exit"))
		return b.String()

	case ModeError:
		return errorStyle.Render(fmt.Sprintf("Load failed: %v", m.err)) +
			helpStyle.Render("\nenter exit")
	}
	return ""
}

// RunLoadUI starts the interactive load flow.
func RunLoadUI(dbPath, dataDir string) error {
	p := tea.NewProgram(NewLoadModel(dbPath, dataDir))
	model, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run load UI: %w", err)
	}
	if m, ok := model.(LoadModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
