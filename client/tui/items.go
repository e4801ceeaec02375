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

type itemsFetchedMsg struct {
	listID string
	items  []models.Item
	stale  bool
	err    error
}

type itemSavedMsg struct {
	item models.Item
	err  error
}

type itemDeletedMsg struct {
	id  string
	err error
}

// itemsModel shows one list's items. Rows follow the same edit state machine
// as the lists screen; space flips an item between pending and completed.
type itemsModel struct {
	api   *api.Client
	cache *cache.Cache

	list   models.List
	rows   []models.Item
	cursor int
	stale  bool

	adding    bool
	editingID string
	input     textinput.Model

	inFlight bool
	errMsg   string
}

func newItemsModel(apiClient *api.Client, c *cache.Cache) itemsModel {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 500
	return itemsModel{api: apiClient, cache: c, input: in}
}

// open points the screen at a list and clears any state left over from the
// previously open one.
func (m itemsModel) open(list models.List) itemsModel {
	m.list = list
	m.rows = nil
	m.cursor = 0
	m.stale = false
	m.adding = false
	m.editingID = ""
	m.inFlight = false
	m.errMsg = ""
	m.input.SetValue("")
	m.input.Blur()
	return m
}

func (m itemsModel) fetch() tea.Cmd {
	apiClient, c, listID := m.api, m.cache, m.list.ID
	return func() tea.Msg {
		items, err := apiClient.Items(listID)
		if err != nil && !api.IsTransient(err) {
			return itemsFetchedMsg{listID: listID, err: err}
		}
		snap, loadErr := c.Load()
		if loadErr != nil {
			snap = cache.Snapshot{Items: map[string][]models.Item{}}
		}
		merged, stale := cache.ReconcileItems(listID, items, snap, err)
		if !stale {
			snapshotItems(c, listID, merged)
		}
		return itemsFetchedMsg{listID: listID, items: merged, stale: stale}
	}
}

func (m itemsModel) editing() bool {
	return m.adding || m.editingID != ""
}

func (m itemsModel) update(msg tea.Msg) (itemsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsFetchedMsg:
		if msg.listID != m.list.ID {
			// Stale fetch from a list the user already navigated away from.
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.rows = msg.items
		m.stale = msg.stale
		if m.cursor >= len(m.rows) {
			m.cursor = max(0, len(m.rows)-1)
		}
		return m, nil

	case itemSavedMsg:
		m.inFlight = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if m.adding {
			m.rows = append(m.rows, msg.item)
			m.cursor = len(m.rows) - 1
		} else {
			for i := range m.rows {
				if m.rows[i].ID == msg.item.ID {
					m.rows[i] = msg.item
				}
			}
		}
		m.adding = false
		m.editingID = ""
		m.errMsg = ""
		m.input.SetValue("")
		m.input.Blur()
		snapshotItems(m.cache, m.list.ID, m.rows)
		return m, nil

	case itemDeletedMsg:
		m.inFlight = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		rows := m.rows[:0:0]
		for _, it := range m.rows {
			if it.ID != msg.id {
				rows = append(rows, it)
			}
		}
		m.rows = rows
		if m.cursor >= len(m.rows) {
			m.cursor = max(0, len(m.rows)-1)
		}
		m.errMsg = ""
		snapshotItems(m.cache, m.list.ID, m.rows)
		return m, nil

	case tea.KeyMsg:
		if m.editing() {
			return m.updateEditing(msg)
		}
		return m.updateViewing(msg)
	}

	return m, nil
}

func (m itemsModel) updateViewing(msg tea.KeyMsg) (itemsModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case " ":
		// Toggle sends only the status field; the description is untouched.
		if len(m.rows) > 0 && !m.inFlight {
			m.inFlight = true
			m.errMsg = ""
			it := m.rows[m.cursor]
			next := models.StatusCompleted
			if it.Status == models.StatusCompleted {
				next = models.StatusPending
			}
			apiClient := m.api
			return m, func() tea.Msg {
				updated, err := apiClient.UpdateItem(it.ID, models.ItemPatch{Status: &next})
				return itemSavedMsg{item: updated, err: err}
			}
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
			m.input.SetValue(m.rows[m.cursor].Description)
			m.input.CursorEnd()
			return m, m.input.Focus()
		}

	case "d":
		if len(m.rows) > 0 && !m.inFlight {
			m.inFlight = true
			m.errMsg = ""
			id := m.rows[m.cursor].ID
			apiClient := m.api
			return m, func() tea.Msg {
				return itemDeletedMsg{id: id, err: apiClient.DeleteItem(id)}
			}
		}

	case "r":
		if !m.inFlight {
			return m, m.fetch()
		}

	case "esc", "b":
		return m, func() tea.Msg { return backToListsMsg{} }
	}
	return m, nil
}

func (m itemsModel) updateEditing(msg tea.KeyMsg) (itemsModel, tea.Cmd) {
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
		desc := strings.TrimSpace(m.input.Value())
		if desc == "" {
			m.errMsg = "Description required"
			return m, nil
		}
		m.inFlight = true
		m.errMsg = ""
		apiClient := m.api
		if m.adding {
			listID := m.list.ID
			return m, func() tea.Msg {
				item, err := apiClient.AddItem(listID, desc)
				return itemSavedMsg{item: item, err: err}
			}
		}
		id := m.editingID
		return m, func() tea.Msg {
			item, err := apiClient.UpdateItem(id, models.ItemPatch{Description: &desc})
			return itemSavedMsg{item: item, err: err}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m itemsModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.list.Title))
	if m.stale {
		b.WriteString("  " + staleStyle.Render("(offline, showing cached data)"))
	}
	b.WriteString("\n\n")

	if len(m.rows) == 0 && !m.adding {
		b.WriteString(mutedStyle.Render("No items yet. Press a to add one.") + "\n")
	}

	for i, it := range m.rows {
		box := boxUnchecked
		if it.Status == models.StatusCompleted {
			box = boxChecked
		}
		line := it.Description
		if it.ID == m.editingID {
			line = m.input.View()
		} else if it.Status == models.StatusCompleted {
			line = doneStyle.Render(line)
		}
		row := fmt.Sprintf("%s %s", box, line)
		if i == m.cursor && !m.adding {
			row = selectedStyle.Render(row)
		}
		b.WriteString(fmt.Sprintf("  %s\n", row))
	}

	if m.adding {
		b.WriteString("\n" + accentStyle.Render("New item: ") + m.input.View() + "\n")
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
		b.WriteString("\n\n" + helpStyle.Render("space toggle · a add · e edit · d delete · r refresh · esc back"))
	}
	return b.String()
}
