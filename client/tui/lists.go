// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"listly/client/api"
	"listly/client/cache"
	"listly/models"
)

// Messages internal to the lists screen.

type listsFetchedMsg struct {
	lists []models.List
	stale bool
	err   error
}

type listSavedMsg struct {
	list models.List
	err  error
}

type listDeletedMsg struct {
	id  string
	err error
}

type logoutDoneMsg struct {
	err error
}

// listsModel shows the user's lists. Each row moves through a small state
// machine: viewing, then editing after `e` or `a`, then saving while the
// request is out, then back to viewing on success or editing with an error
// message on failure. Esc abandons the edit.
type listsModel struct {
	api   *api.Client
	cache *cache.Cache

	rows   []models.List
	cursor int
	stale  bool

	adding    bool
	editingID string
	input     textinput.Model

	inFlight bool
	errMsg   string
}

func newListsModel(apiClient *api.Client, c *cache.Cache) listsModel {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 200
	return listsModel{api: apiClient, cache: c, input: in}
}

// fetch reloads the lists from the server. When the server is unreachable
// the cached snapshot is shown instead, marked stale.
func (m listsModel) fetch() tea.Cmd {
	apiClient, c := m.api, m.cache
	return func() tea.Msg {
		lists, err := apiClient.Lists()
		if err != nil && !api.IsTransient(err) {
			return listsFetchedMsg{err: err}
		}
		snap, loadErr := c.Load()
		if loadErr != nil {
			snap = cache.Snapshot{Items: map[string][]models.Item{}}
		}
		merged, stale := cache.ReconcileLists(lists, snap, err)
		if !stale {
			snapshotLists(c, merged)
		}
		return listsFetchedMsg{lists: merged, stale: stale}
	}
}

func (m listsModel) editing() bool {
	return m.adding || m.editingID != ""
}

func (m listsModel) update(msg tea.Msg) (listsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case listsFetchedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.rows = msg.lists
		m.stale = msg.stale
		if m.cursor >= len(m.rows) {
			m.cursor = max(0, len(m.rows)-1)
		}
		// A refresh landing mid-edit replaces the rows but never the
		// draft: editingID and the input survive untouched.
		return m, nil

	case listSavedMsg:
		m.inFlight = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if m.adding {
			m.rows = append([]models.List{msg.list}, m.rows...)
			m.cursor = 0
		} else {
			for i := range m.rows {
				if m.rows[i].ID == msg.list.ID {
					m.rows[i] = msg.list
				}
			}
		}
		m.adding = false
		m.editingID = ""
		m.errMsg = ""
		m.input.SetValue("")
		m.input.Blur()
		snapshotLists(m.cache, m.rows)
		return m, nil

	case listDeletedMsg:
		m.inFlight = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		rows := m.rows[:0:0]
		for _, l := range m.rows {
			if l.ID != msg.id {
				rows = append(rows, l)
			}
		}
		m.rows = rows
		if m.cursor >= len(m.rows) {
			m.cursor = max(0, len(m.rows)-1)
		}
		m.errMsg = ""
		snapshotLists(m.cache, m.rows)
		return m, nil

	case logoutDoneMsg:
		m.inFlight = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return loggedOutMsg{} }

	case tea.KeyMsg:
		if m.editing() {
			return m.updateEditing(msg)
		}
		return m.updateViewing(msg)
	}

	return m, nil
}

func (m listsModel) updateViewing(msg tea.KeyMsg) (listsModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "enter":
		if len(m.rows) > 0 {
			list := m.rows[m.cursor]
			return m, func() tea.Msg { return openListMsg{list: list} }
		}

	case "a":
		m.adding = true
		m.errMsg = ""
		m.input.SetValue("")
		return m, m.input.Focus()

	case "e":
		if len(m.rows) > 0 {
			m.editingID = m.rows[m.cursor].ID
			m.errMsg = ""
			m.input.SetValue(m.rows[m.cursor].Title)
			m.input.CursorEnd()
			return m, m.input.Focus()
		}

	case "d":
		// The row stays on screen until the server confirms the delete.
		if len(m.rows) > 0 && !m.inFlight {
			m.inFlight = true
			m.errMsg = ""
			id := m.rows[m.cursor].ID
			apiClient := m.api
			return m, func() tea.Msg {
				return listDeletedMsg{id: id, err: apiClient.DeleteList(id)}
			}
		}

	case "r":
		if !m.inFlight {
			return m, m.fetch()
		}

	case "q":
		if !m.inFlight {
			m.inFlight = true
			apiClient := m.api
			return m, func() tea.Msg {
				return logoutDoneMsg{err: apiClient.Logout()}
			}
		}
	}
	return m, nil
}

func (m listsModel) updateEditing(msg tea.KeyMsg) (listsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.editingID = ""
		m.errMsg = ""
		m.input.SetValue("")
		m.input.Blur()
		return m, nil

	case "enter":
		if m.inFlight {
			return m, nil
		}
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.errMsg = "List title required"
			return m, nil
		}
		m.inFlight = true
		m.errMsg = ""
		apiClient := m.api
		if m.adding {
			return m, func() tea.Msg {
				list, err := apiClient.AddList(title)
				return listSavedMsg{list: list, err: err}
			}
		}
		id := m.editingID
		return m, func() tea.Msg {
			list, err := apiClient.RenameList(id, title)
			return listSavedMsg{list: list, err: err}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m listsModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Your lists"))
	if m.stale {
		b.WriteString("  " + staleStyle.Render("(offline, showing cached data)"))
	}
	b.WriteString("\n\n")

	if len(m.rows) == 0 && !m.adding {
		b.WriteString(mutedStyle.Render("No lists yet. Press a to add one.") + "\n")
	}

	for i, l := range m.rows {
		line := l.Title
		if l.ID == m.editingID {
			line = m.input.View()
		}
		if i == m.cursor && !m.adding {
			line = selectedStyle.Render(line)
		}
		b.WriteString(fmt.Sprintf("  %s\n", line))
	}

	if m.adding {
		b.WriteString("\n" + accentStyle.Render("New list: ") + m.input.View() + "\n")
	}

	if m.inFlight {
		b.WriteString("\n" + mutedStyle.Render("Saving..."))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	if m.editing() {
		b.WriteString("\n\n" + helpStyle.Render("enter save · esc cancel"))
	} else {
		b.WriteString("\n\n" + helpStyle.Render("enter open · a add · e edit · d delete · r refresh · q log out"))
	}
	return b.String()
}
