// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"listly/client/api"
	"listly/client/cache"
	"listly/models"
)

type screen int

const (
	screenLogin screen = iota
	screenLists
	screenItems
)

// App is the top-level model: it owns the active screen and the navigation
// between screens. Each screen is its own model with its own state machine.
type App struct {
	api   *api.Client
	cache *cache.Cache

	screen screen
	login  loginModel
	lists  listsModel
	items  itemsModel

	width, height int
}

func NewApp(apiClient *api.Client, c *cache.Cache) App {
	return App{
		api:    apiClient,
		cache:  c,
		screen: screenLogin,
		login:  newLoginModel(apiClient),
		lists:  newListsModel(apiClient, c),
		items:  newItemsModel(apiClient, c),
	}
}

// Run starts the program and blocks until the user quits.
func Run(apiClient *api.Client, c *cache.Cache) error {
	p := tea.NewProgram(NewApp(apiClient, c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Navigation messages emitted by the screen models.

type sessionCheckedMsg struct {
	user *models.Identity
	err  error
}

type authDoneMsg struct {
	user models.Identity
	err  error
}

type openListMsg struct {
	list models.List
}

type backToListsMsg struct{}

type loggedOutMsg struct{}

// checkSession verifies the stored session on mount; an expired or missing
// session lands on the login screen.
func (a App) checkSession() tea.Msg {
	user, err := a.api.Session()
	return sessionCheckedMsg{user: user, err: err}
}

func (a App) Init() tea.Cmd {
	return a.checkSession
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case sessionCheckedMsg:
		if msg.err == nil && msg.user != nil {
			a.screen = screenLists
			return a, a.lists.fetch()
		}
		a.screen = screenLogin
		return a, a.login.focus()

	case authDoneMsg:
		if msg.err != nil {
			a.login = a.login.fail(msg.err)
			return a, nil
		}
		a.login = a.login.reset()
		a.screen = screenLists
		return a, a.lists.fetch()

	case openListMsg:
		a.items = a.items.open(msg.list)
		a.screen = screenItems
		return a, a.items.fetch()

	case backToListsMsg:
		a.screen = screenLists
		return a, a.lists.fetch()

	case loggedOutMsg:
		a.screen = screenLogin
		a.login = newLoginModel(a.api)
		a.lists = newListsModel(a.api, a.cache)
		a.items = newItemsModel(a.api, a.cache)
		return a, a.login.focus()
	}

	var cmd tea.Cmd
	switch a.screen {
	case screenLogin:
		a.login, cmd = a.login.update(msg)
	case screenLists:
		a.lists, cmd = a.lists.update(msg)
	case screenItems:
		a.items, cmd = a.items.update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	var content string
	switch a.screen {
	case screenLogin:
		content = a.login.view()
	case screenLists:
		content = a.lists.view()
	case screenItems:
		content = a.items.view()
	}
	return panelStyle.Render(content)
}

// snapshotLists persists the freshly fetched lists into the local cache.
func snapshotLists(c *cache.Cache, lists []models.List) {
	snap, err := c.Load()
	if err != nil {
		return
	}
	snap.Lists = lists
	snap.FetchedAt = time.Now()
	_ = c.Save(snap)
}

// snapshotItems persists one list's items into the local cache.
func snapshotItems(c *cache.Cache, listID string, items []models.Item) {
	snap, err := c.Load()
	if err != nil {
		return
	}
	snap.Items[listID] = items
	snap.FetchedAt = time.Now()
	_ = c.Save(snap)
}
