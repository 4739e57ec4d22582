// Package tui provides the Bubble Tea text analysis editor.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/textlens/internal/analysis"
	"github.com/verte-zerg/textlens/internal/model"
	"github.com/verte-zerg/textlens/internal/readjob"
	"github.com/verte-zerg/textlens/internal/store"
)

const (
	tabBasic = iota
	tabAdvanced
	tabReadability
	tabHeatmap
	tabCloud
)

var tabNames = []string{"Basic", "Advanced", "Readability", "Heatmap", "Word Cloud"}

const (
	minEditorHeight = 3
	footerHeight    = 2
	fallbackWidth   = 80
	shortIDLen      = 8
	exportFileName  = "text-analysis.txt"
)

// readabilityMsg carries a finished readability request back to Update.
type readabilityMsg readjob.Outcome

// Model implements the Bubble Tea analysis UI.
type Model struct {
	cfg    model.Config
	store  *store.Store
	draft  model.Draft
	ctx    context.Context
	cancel context.CancelFunc

	editor   textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	tracker  *readjob.Tracker

	text   string
	report model.Report

	activeTab int
	width     int
	height    int

	copyText  func(string) error
	exportDir string

	status string
	errMsg string
}

// NewModel constructs the editor preloaded with draft.Body. st may be nil,
// in which case saving drafts is unavailable.
func NewModel(cfg model.Config, st *store.Store, draft model.Draft) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		cfg:       cfg,
		store:     st,
		draft:     draft,
		ctx:       ctx,
		cancel:    cancel,
		viewport:  viewport.New(0, 0),
		tracker:   readjob.New(cfg.ReadabilityDelay),
		copyText:  clipboard.WriteAll,
		exportDir: ".",
	}

	m.editor = textarea.New()
	m.editor.Placeholder = "Start typing or paste your text here..."
	m.editor.ShowLineNumbers = false
	m.editor.CharLimit = 0
	m.editor.MaxHeight = 0
	// ctrl+n, ctrl+p and ctrl+e belong to the app.
	m.editor.KeyMap.LineNext.SetKeys("down")
	m.editor.KeyMap.LinePrevious.SetKeys("up")
	m.editor.KeyMap.LineEnd.SetKeys("end")
	m.editor.SetValue(draft.Body)
	m.editor.Focus()

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = spinnerStyle

	m.setText(m.editor.Value())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContent()
		return m, nil
	case readabilityMsg:
		m.handleReadability(readjob.Outcome(msg))
		return m, nil
	case spinner.TickMsg:
		if m.tracker.Snapshot().State != readjob.StatePending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.activeTab == tabReadability {
			m.renderTabContent()
		}
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		case "ctrl+n":
			return m, m.moveTab(1)
		case "ctrl+p":
			return m, m.moveTab(-1)
		case "ctrl+r":
			return m, m.requestReadability()
		case "ctrl+s":
			m.saveDraft()
			return m, nil
		case "ctrl+y":
			m.copyToClipboard()
			return m, nil
		case "ctrl+e":
			m.exportText()
			return m, nil
		case "ctrl+x":
			m.editor.Reset()
			m.setText("")
			m.status = "Cleared"
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if value := m.editor.Value(); value != m.text {
		m.setText(value)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerH, editorH, bodyH := m.layoutHeights()
	parts := []string{
		fitLines(m.renderTabs(), m.width, headerH),
		fitLines(m.editor.View(), m.width, editorH),
		separatorStyle.Render(strings.Repeat("─", m.width)),
		fitLines(m.viewport.View(), m.width, bodyH),
		fitLines(m.renderFooter(), m.width, footerHeight),
	}
	return strings.Join(parts, "\n")
}

// Text returns the current editor contents.
func (m *Model) Text() string {
	return m.text
}

// setText is the single entry point for input changes: the full analysis is
// recomputed and any readability result is discarded.
func (m *Model) setText(text string) {
	m.text = text
	m.report = analysis.Analyze(text)
	m.tracker.Reset()
	m.status = ""
	m.renderTabContent()
}

func (m *Model) requestReadability() tea.Cmd {
	_, outcome := m.tracker.Go(m.ctx, m.text)
	m.errMsg = ""
	m.renderTabContent()
	return tea.Batch(waitReadability(outcome), m.spinner.Tick)
}

func waitReadability(outcome <-chan readjob.Outcome) tea.Cmd {
	return func() tea.Msg {
		return readabilityMsg(<-outcome)
	}
}

func (m *Model) handleReadability(o readjob.Outcome) {
	if o.Err != nil {
		if !errors.Is(o.Err, context.Canceled) {
			m.errMsg = fmt.Sprintf("readability failed: %v", o.Err)
		}
		m.renderTabContent()
		return
	}
	// Superseded by a later request or an edit.
	if !o.Current || o.Ticket != m.tracker.Snapshot().Ticket {
		return
	}
	m.renderTabContent()
}

func (m *Model) saveDraft() {
	if m.store == nil {
		m.errMsg = "drafts are unavailable"
		return
	}
	m.draft.Body = m.text
	saved, err := m.store.SaveDraft(m.ctx, m.draft)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.draft = saved
	m.errMsg = ""
	m.status = "Saved draft " + shortID(saved.ID)
}

func (m *Model) copyToClipboard() {
	if err := m.copyText(m.text); err != nil {
		m.errMsg = fmt.Sprintf("failed to copy: %v", err)
		return
	}
	m.errMsg = ""
	m.status = "Copied to clipboard"
}

func (m *Model) exportText() {
	path := filepath.Join(m.exportDir, exportFileName)
	if err := os.WriteFile(path, []byte(m.text), 0o644); err != nil {
		m.errMsg = fmt.Sprintf("failed to export: %v", err)
		return
	}
	m.errMsg = ""
	m.status = "Exported to " + path
}

func (m *Model) moveTab(delta int) tea.Cmd {
	count := len(tabNames)
	m.activeTab = (m.activeTab + delta + count) % count
	m.viewport.GotoTop()
	// Opening the readability tab starts an analysis when none is cached.
	if m.activeTab == tabReadability && m.tracker.Snapshot().State == readjob.StateIdle {
		return m.requestReadability()
	}
	m.renderTabContent()
	return nil
}

func (m *Model) layoutHeights() (headerH, editorH, bodyH int) {
	headerH = max(1, lipgloss.Height(activeNavStyle.Render("X")))
	// One line separates editor and results.
	rest := m.height - headerH - footerHeight - 1
	editorH = max(minEditorHeight, rest/3)
	bodyH = max(1, rest-editorH)
	return headerH, editorH, bodyH
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, editorH, bodyH := m.layoutHeights()
	m.editor.SetWidth(m.width)
	m.editor.SetHeight(editorH)
	m.viewport.Width = m.width
	m.viewport.Height = bodyH
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, tab := range tabNames {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderTabContent() {
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	m.viewport.SetContent(m.tabContent(width))
}

func (m *Model) tabContent(width int) string {
	switch m.activeTab {
	case tabAdvanced:
		return renderAdvanced(m.report.Stats, m.report.CharFrequency, m.cfg.CharLimit, width)
	case tabReadability:
		return renderReadability(m.tracker.Snapshot(), m.spinner.View(), width)
	case tabHeatmap:
		return renderHeatmap(m.report.Heatmap, m.report.Insights, width)
	case tabCloud:
		return renderCloud(m.report.WordCloud, m.cfg.CloudLimit, width)
	default:
		return renderBasic(m.report.Stats, width)
	}
}

func (m *Model) renderFooter() string {
	help := "Tabs: ctrl+n/ctrl+p  Readability: ctrl+r  Save: ctrl+s  Copy: ctrl+y  Export: ctrl+e  Clear: ctrl+x  Scroll: pgup/pgdn  Quit: esc"
	help = headerStyle.Render(truncateLine(help, m.width))

	st := m.report.Stats
	segments := []string{
		fmt.Sprintf("Words %d", st.Words),
		fmt.Sprintf("Characters %d", st.Characters),
		"Reading " + analysis.FormatMinutes(st.ReadingTimeMinutes),
	}
	if m.draft.ID != "" {
		segments = append(segments, "Draft "+shortID(m.draft.ID))
	}
	line := footerStyle.Render(strings.Join(segments, " · "))
	switch {
	case m.errMsg != "":
		line += "  " + errorStyle.Render(m.errMsg)
	case m.status != "":
		line += "  " + statusStyle.Render(m.status)
	}
	return help + "\n" + line
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}
