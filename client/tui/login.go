// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"listly/client/api"
)

const (
	fieldName = iota
	fieldUsername
	fieldPassword
)

// loginModel is the login/register screen. Tab between fields, ctrl+r to
// flip between login and register mode, enter to submit.
type loginModel struct {
	api *api.Client

	registering bool
	inputs      []textinput.Model
	focused     int

	inFlight bool
	errMsg   string
}

func newLoginModel(apiClient *api.Client) loginModel {
	name := textinput.New()
	name.Prompt = "Name:     "
	name.CharLimit = 100

	username := textinput.New()
	username.Prompt = "Username: "
	username.CharLimit = 100

	password := textinput.New()
	password.Prompt = "Password: "
	password.CharLimit = 200
	password.EchoMode = textinput.EchoPassword

	return loginModel{
		api:     apiClient,
		inputs:  []textinput.Model{name, username, password},
		focused: fieldUsername,
	}
}

func (m loginModel) focus() tea.Cmd {
	return m.inputs[m.focused].Focus()
}

func (m loginModel) fail(err error) loginModel {
	m.inFlight = false
	m.errMsg = err.Error()
	return m
}

func (m loginModel) reset() loginModel {
	m.inFlight = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	return m
}

// firstField is where tab-cycling starts: name only exists when registering.
func (m loginModel) firstField() int {
	if m.registering {
		return fieldName
	}
	return fieldUsername
}

func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.inputs[m.focused].Blur()
			m.focused++
			if m.focused > fieldPassword {
				m.focused = m.firstField()
			}
			return m, m.inputs[m.focused].Focus()

		case "shift+tab", "up":
			m.inputs[m.focused].Blur()
			m.focused--
			if m.focused < m.firstField() {
				m.focused = fieldPassword
			}
			return m, m.inputs[m.focused].Focus()

		case "ctrl+r":
			m.registering = !m.registering
			m.errMsg = ""
			if !m.registering && m.focused == fieldName {
				m.inputs[m.focused].Blur()
				m.focused = fieldUsername
				return m, m.inputs[m.focused].Focus()
			}
			return m, nil

		case "enter":
			// A second enter while the first request is outstanding is a
			// no-op, not a queued duplicate.
			if m.inFlight {
				return m, nil
			}

			name := strings.TrimSpace(m.inputs[fieldName].Value())
			username := strings.TrimSpace(m.inputs[fieldUsername].Value())
			password := m.inputs[fieldPassword].Value()

			if username == "" || password == "" || (m.registering && name == "") {
				m.errMsg = "All fields are required"
				return m, nil
			}

			m.inFlight = true
			m.errMsg = ""
			registering := m.registering
			return m, func() tea.Msg {
				if registering {
					user, err := m.api.Register(name, username, password)
					return authDoneMsg{user: user, err: err}
				}
				user, err := m.api.Login(username, password)
				return authDoneMsg{user: user, err: err}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m loginModel) view() string {
	var b strings.Builder

	if m.registering {
		b.WriteString(titleStyle.Render("Listly · create account"))
	} else {
		b.WriteString(titleStyle.Render("Listly · log in"))
	}
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		if i == fieldName && !m.registering {
			continue
		}
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.inFlight {
		b.WriteString("\n" + mutedStyle.Render("Signing in..."))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n" + helpStyle.Render("enter submit · tab next field · ctrl+r switch login/register · ctrl+c quit"))
	return b.String()
}
