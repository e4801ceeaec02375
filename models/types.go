package models

import "time"

// Item status constants
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the item status constants.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the minimal public record of an authenticated user.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Identity returns the public projection of a user.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Name: u.Name}
}

type List struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"` // Scoping detail, not part of the wire contract
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type Item struct {
	ID          string    `json:"id"`
	ListID      string    `json:"list_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemPatch carries the optional fields of an item update. A nil field
// means "leave unchanged"; at least one field must be set.
type ItemPatch struct {
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p ItemPatch) Empty() bool {
	return p.Description == nil && p.Status == nil
}

// Request types

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddListRequest struct {
	ListTitle string `json:"listTitle"`
}

type UpdateListRequest struct {
	ListTitle string `json:"listTitle"`
}

type AddItemRequest struct {
	ListID      string `json:"listId"`
	Description string `json:"description"`
}

// UpdateItemRequest mirrors ItemPatch on the wire.
type UpdateItemRequest struct {
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Response types

type UserResponse struct {
	Success bool     `json:"success"`
	User    Identity `json:"user"`
}

type SessionResponse struct {
	Session bool      `json:"session"`
	User    *Identity `json:"user,omitempty"`
}

type ListsResponse struct {
	Success bool   `json:"success"`
	Lists   []List `json:"list"`
}

type ListResponse struct {
	Success bool `json:"success"`
	List    List `json:"list"`
}

type ItemsResponse struct {
	Success bool   `json:"success"`
	Items   []Item `json:"items"`
}

type ItemResponse struct {
	Success bool `json:"success"`
	Item    Item `json:"item"`
}

type OKResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
