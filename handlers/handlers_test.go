package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"listly/middleware"
	"listly/models"
	"listly/session"
	"listly/store"
	"listly/testutil"
)

// testEnv wires handlers into a mux with the production route patterns so
// path values and the session guard behave exactly as they do in the router.
type testEnv struct {
	st       *store.Store
	sessions session.Store
	mux      *http.ServeMux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	sessions := session.NewMemoryStore(time.Hour)
	cfg := testutil.GetTestConfig()

	authHandler := NewAuthHandler(st, sessions, cfg)
	listHandler := NewListHandler(st)
	itemHandler := NewItemHandler(st)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /logout", authHandler.Logout)
	mux.HandleFunc("GET /get-session", authHandler.GetSession)
	mux.HandleFunc("GET /get-list", middleware.RequireSession(sessions, listHandler.GetLists))
	mux.HandleFunc("POST /add-list", middleware.RequireSession(sessions, listHandler.AddList))
	mux.HandleFunc("POST /update-list/{id}", middleware.RequireSession(sessions, listHandler.UpdateList))
	mux.HandleFunc("POST /delete-list/{id}", middleware.RequireSession(sessions, listHandler.DeleteList))
	mux.HandleFunc("GET /get-items/{listId}", middleware.RequireSession(sessions, itemHandler.GetItems))
	mux.HandleFunc("POST /add-item", middleware.RequireSession(sessions, itemHandler.AddItem))
	mux.HandleFunc("POST /update-item/{id}", middleware.RequireSession(sessions, itemHandler.UpdateItem))
	mux.HandleFunc("POST /delete-item/{id}", middleware.RequireSession(sessions, itemHandler.DeleteItem))

	return &testEnv{st: st, sessions: sessions, mux: mux}
}

func (e *testEnv) do(method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := testutil.MakeRequest(method, path, body, cookies...)
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	return w
}

// register creates a user through the API and returns its session cookie.
func (e *testEnv) register(t *testing.T, name, username, password string) *http.Cookie {
	t.Helper()

	w := e.do("POST", "/register", models.RegisterRequest{
		Name:     name,
		Username: username,
		Password: password,
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("No session cookie set on register")
	return nil
}

// addList creates a list through the API and returns it.
func (e *testEnv) addList(t *testing.T, cookie *http.Cookie, title string) models.List {
	t.Helper()

	w := e.do("POST", "/add-list", models.AddListRequest{ListTitle: title}, cookie)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ListResponse
	testutil.AssertJSON(t, w, &resp)
	return resp.List
}

// addItem creates an item through the API and returns it.
func (e *testEnv) addItem(t *testing.T, cookie *http.Cookie, listID, description string) models.Item {
	t.Helper()

	w := e.do("POST", "/add-item", models.AddItemRequest{ListID: listID, Description: description}, cookie)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ItemResponse
	testutil.AssertJSON(t, w, &resp)
	return resp.Item
}
