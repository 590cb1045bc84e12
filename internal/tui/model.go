// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	appTitle        = "Shared Note"
	textPlaceholder = "Please Input Text"

	messageCopied     = "Copied"
	messageCopyFailed = "Failed To Copy"
)

// noteModel renders the note editor. The textarea mirrors the client text:
// edits are pushed with EditText and client changes are pulled back with
// Snapshot.
type noteModel struct {
	ctx       context.Context
	client    NoteClient
	logger    *logger.Logger
	buildInfo models.AppBuildInfo
	copyFn    func(string) error

	textarea      textarea.Model
	message       string
	showBuildInfo bool
}

func newNoteModel(ctx context.Context, client NoteClient, buildInfo models.AppBuildInfo, log *logger.Logger) noteModel {
	ta := textarea.New()
	ta.Placeholder = textPlaceholder
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(80)
	ta.SetHeight(16)
	ta.Focus()

	state := client.Snapshot()
	ta.SetValue(state.Text)

	return noteModel{
		ctx:       ctx,
		client:    client,
		logger:    log,
		buildInfo: buildInfo,
		copyFn:    clipboard.WriteAll,
		textarea:  ta,
		message:   state.Message,
	}
}

func (m noteModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.waitForChange(), m.cmdInitialize())
}

func (m noteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.syncFromClient()
		return m, m.waitForChange()
	case changesClosedMsg:
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.showBuildInfo {
			if key.Matches(msg, keys.buildInfo, keys.back) {
				m.showBuildInfo = false
				return m, nil
			}
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(msg, keys.load):
			return m, m.cmdLoad()
		case key.Matches(msg, keys.save):
			return m, m.cmdSave()
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy(m.client.Snapshot().Text)
		}
	}

	before := m.textarea.Value()
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if after := m.textarea.Value(); after != before {
		m.client.EditText(after)
	}
	return m, cmd
}

func (m noteModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")
	b.WriteString(statusLine(m.message))

	return renderPage(appTitle, b.String(), hotKeys(keys.load, keys.save, keys.copy, keys.buildInfo, keys.quit))
}

// syncFromClient copies the client state into the view. The textarea is
// only reset when its value differs so the cursor survives local edits.
func (m *noteModel) syncFromClient() {
	state := m.client.Snapshot()
	m.message = state.Message
	if m.textarea.Value() != state.Text {
		m.textarea.SetValue(state.Text)
	}
}

func (m *noteModel) resize(width, height int) {
	// title, dividers, status and help lines plus the page padding
	const chrome = 12
	if w := width - 6; w > 0 {
		m.textarea.SetWidth(w)
	}
	if h := height - chrome; h > 0 {
		m.textarea.SetHeight(h)
	}
}

func (m noteModel) waitForChange() tea.Cmd {
	changes := m.client.Changes()
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return changesClosedMsg{}
		}
		return stateChangedMsg{}
	}
}

func (m noteModel) cmdInitialize() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		client.Initialize(ctx)
		return nil
	}
}

func (m noteModel) cmdLoad() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		client.Load(ctx, false)
		return nil
	}
}

func (m noteModel) cmdSave() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		client.Save(ctx)
		return nil
	}
}

func (m noteModel) cmdCopy(text string) tea.Cmd {
	client, copyFn, log := m.client, m.copyFn, m.logger
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			log.Err(err).Msg("copy note to clipboard")
			client.SetMessage(messageCopyFailed, false)
			return nil
		}
		client.SetMessage(messageCopied, false)
		return nil
	}
}
