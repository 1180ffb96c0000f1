// Package app implements the full-screen terminal UI: a navigation bar
// over panels for initializing, pushing, pulling and inspecting a vault.
// It drives the same actions layer as the CLI; blocking work runs inside
// tea.Cmd goroutines and reports back via messages.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"obsidianite.dev/obsidianite/internal/actions"
	"obsidianite.dev/obsidianite/internal/config"
	oberrors "obsidianite.dev/obsidianite/internal/errors"
	"obsidianite.dev/obsidianite/internal/git"
	"obsidianite.dev/obsidianite/internal/runtime"
	"obsidianite.dev/obsidianite/internal/tui"
)

type panel int

const (
	panelInit panel = iota
	panelPush
	panelPull
	panelStatus
)

var panelTitles = []string{"Initialize", "Push", "Pull", "Status"}

const (
	inputVault = iota
	inputRepo
	inputToken
	inputCount
)

// Model is the bubbletea model for the obsidianite TUI.
type Model struct {
	version string
	rt      *runtime.Context

	active panel
	busy   bool

	inputs [inputCount]textinput.Model
	focus  int

	spinner spinner.Model

	// push panel state
	changes    *git.ChangeSet
	confirming bool

	// status panel state
	mapping *config.Mapping

	result string
	err    error

	width  int
	height int
}

// New creates the TUI model. The splog is silenced so action output goes
// only to the log file; the UI renders results itself.
func New(version string) (Model, error) {
	rt, err := runtime.New()
	if err != nil {
		return Model{}, err
	}
	rt.Splog.SetQuiet(true)

	m := Model{
		version: version,
		rt:      rt,
		active:  panelInit,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		m.inputs[i] = ti
	}
	m.inputs[inputVault].Placeholder = "~/Documents/Vault"
	m.inputs[inputRepo].Placeholder = "repository name (optional)"
	m.inputs[inputToken].Placeholder = "GitHub Personal Access Token"
	m.inputs[inputToken].EchoMode = textinput.EchoPassword
	m.inputs[inputToken].EchoCharacter = '•'
	m.inputs[inputVault].Focus()

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ObsidianPurpleBright))

	if mapping, err := rt.Store.Mapping(); err == nil {
		m.mapping = mapping
		m.active = panelStatus
	}

	return m, nil
}

// opDoneMsg reports the outcome of a background operation.
type opDoneMsg struct {
	summary string
	err     error
}

// changesLoadedMsg carries the pending change set for the push panel.
type changesLoadedMsg struct {
	changes *git.ChangeSet
	err     error
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case opDoneMsg:
		m.busy = false
		m.confirming = false
		m.err = msg.err
		m.result = msg.summary
		if mapping, err := m.rt.Store.Mapping(); err == nil {
			m.mapping = mapping
		}
		return m, nil

	case changesLoadedMsg:
		m.busy = false
		m.err = msg.err
		m.changes = msg.changes
		m.confirming = msg.err == nil && msg.changes != nil && !msg.changes.Empty()
		if msg.err == nil && (msg.changes == nil || msg.changes.Empty()) {
			m.result = "No changes to commit."
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	typing := m.active == panelInit

	switch msg.String() {
	case "q":
		if !typing {
			return m, tea.Quit
		}
	case "1", "2", "3", "4":
		// Digits are typeable on the init panel's inputs
		if !typing {
			return m.switchPanel(panel(int(msg.String()[0] - '1')))
		}
	case "tab":
		if typing {
			m.focus = (m.focus + 1) % inputCount
			return m.refocus()
		}
		return m.switchPanel((m.active + 1) % 4)
	case "shift+tab":
		if typing {
			m.focus = (m.focus + inputCount - 1) % inputCount
			return m.refocus()
		}
		return m.switchPanel((m.active + 3) % 4)
	case "y":
		if m.active == panelPush && m.confirming {
			return m.startPush()
		}
	case "n", "esc":
		if m.active == panelPush && m.confirming {
			m.confirming = false
			m.result = "Operation cancelled."
			return m, nil
		}
	case "enter":
		switch m.active {
		case panelInit:
			return m.startInit()
		case panelPush:
			if !m.confirming {
				return m.startLoadChanges()
			}
			return m.startPush()
		case panelPull:
			return m.startPull()
		case panelStatus:
			return m.startLoadChanges()
		}
	}

	return m.updateInputs(msg)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.active != panelInit {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) refocus() (tea.Model, tea.Cmd) {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, textinput.Blink
}

func (m Model) switchPanel(p panel) (tea.Model, tea.Cmd) {
	m.active = p
	m.err = nil
	m.result = ""
	m.confirming = false
	if p == panelPush || p == panelStatus {
		return m.startLoadChanges()
	}
	return m, nil
}

func (m Model) startInit() (tea.Model, tea.Cmd) {
	vault := strings.TrimSpace(m.inputs[inputVault].Value())
	repo := strings.TrimSpace(m.inputs[inputRepo].Value())
	token := strings.TrimSpace(m.inputs[inputToken].Value())

	if vault == "" {
		m.err = fmt.Errorf("vault path is required")
		return m, nil
	}
	if repo == "" {
		repo = config.DefaultRepoName(filepath.Base(vault))
	}

	m.busy = true
	m.err = nil
	m.result = ""

	rt := m.rt
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		err := actions.Init(context.Background(), rt, actions.InitOptions{
			VaultPath: vault,
			RepoName:  repo,
			Token:     token,
		})
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{summary: "Vault initialized and pushed to GitHub"}
	})
}

func (m Model) startLoadChanges() (tea.Model, tea.Cmd) {
	m.busy = true
	m.err = nil
	m.result = ""

	rt := m.rt
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		runner, _, err := rt.VaultRunner()
		if err != nil {
			return changesLoadedMsg{err: err}
		}
		changes, err := runner.ChangedFiles(context.Background())
		return changesLoadedMsg{changes: changes, err: err}
	})
}

func (m Model) startPush() (tea.Model, tea.Cmd) {
	m.busy = true
	m.err = nil

	rt := m.rt
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		err := actions.Push(context.Background(), rt, actions.PushOptions{AssumeYes: true})
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{summary: "Changes pushed to GitHub"}
	})
}

func (m Model) startPull() (tea.Model, tea.Cmd) {
	m.busy = true
	m.err = nil
	m.result = ""

	rt := m.rt
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		err := actions.Pull(context.Background(), rt)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{summary: "Vault is up to date with GitHub"}
	})
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(tui.Banner(m.version))
	b.WriteString("\n")
	b.WriteString(m.viewNav())
	b.WriteString("\n\n")

	switch m.active {
	case panelInit:
		b.WriteString(m.viewInit())
	case panelPush:
		b.WriteString(m.viewPush())
	case panelPull:
		b.WriteString(m.viewPull())
	case panelStatus:
		b.WriteString(m.viewStatus())
	}

	b.WriteString("\n\n")
	if m.busy {
		b.WriteString(m.spinner.View() + " working...")
	} else {
		if m.err != nil {
			b.WriteString(tui.ErrorStyle.Render("Error: ") + oberrors.RedactError(m.err, ""))
			b.WriteString("\n")
		}
		if m.result != "" {
			b.WriteString(tui.SuccessStyle.Render("✓ ") + m.result)
			b.WriteString("\n")
		}
		b.WriteString(tui.MutedStyle.Render("1-4: panels | tab: next | enter: run | q: quit"))
	}

	return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
}

func (m Model) viewNav() string {
	items := make([]string, 0, len(panelTitles))
	for i, title := range panelTitles {
		label := fmt.Sprintf(" %d %s ", i+1, title)
		if panel(i) == m.active {
			items = append(items, tui.PrimaryStyle.
				Background(lipgloss.Color(tui.ObsidianGray)).
				Render(label))
		} else {
			items = append(items, tui.MutedStyle.Render(label))
		}
	}
	return strings.Join(items, " ")
}

func (m Model) viewInit() string {
	labels := [inputCount]string{"Vault path", "Repository", "Token"}

	var b strings.Builder
	for i := range m.inputs {
		b.WriteString(tui.AccentStyle.Render(labels[i] + ":"))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if _, err := m.rt.Store.Token(); err == nil {
		b.WriteString(tui.SuccessStyle.Render("✓") + tui.MutedStyle.Render(" token already configured, leave blank to keep it"))
		b.WriteString("\n")
	}
	return tui.Panel("Initialize your vault", b.String())
}

func (m Model) viewPush() string {
	if m.changes == nil || m.changes.Empty() {
		return tui.Panel("Push changes", "Press enter to scan the vault for changes.")
	}
	content := tui.ChangeTable("", m.changes)
	if m.confirming {
		content += "\n" + tui.WarningStyle.Render("Push these changes? (y/n)")
	}
	return tui.Panel("Push changes", content)
}

func (m Model) viewPull() string {
	return tui.Panel("Pull changes", "Press enter to pull the latest changes from GitHub.")
}

func (m Model) viewStatus() string {
	if m.mapping == nil {
		return tui.Panel("Status", "Vault not configured. Use the Initialize panel first.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Vault:      %s\n", m.mapping.VaultPath))
	b.WriteString(fmt.Sprintf("Repository: %s\n", m.mapping.RepoFullName))
	b.WriteString(fmt.Sprintf("Remote:     %s\n", m.mapping.RemoteURL))
	if m.changes != nil {
		if m.changes.Empty() {
			b.WriteString("\n" + tui.SuccessStyle.Render("Working tree clean"))
		} else {
			b.WriteString(fmt.Sprintf("\n%d local change(s) pending", m.changes.Total()))
		}
	}
	return tui.Panel("Status", b.String())
}
