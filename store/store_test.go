package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"listly/models"
)

var (
	testID   = "00000000-0000-0000-0000-000000000001"
	testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

func newStoreWithMock(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	s := New(db)
	s.newID = func() string { return testID }
	s.now = func() time.Time { return testTime }
	return s, mock, db
}

func TestCreateUser_Success(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `(?s)INSERT\s+INTO\s+users\s*\(id,\s*username,\s*name,\s*password_hash,\s*created_at\)`
	mock.ExpectExec(q).
		WithArgs(testID, "ana1", "Ana", "hash", testTime).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := s.CreateUser(context.Background(), "Ana", "ana1", "hash")
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if user.ID != testID || user.Username != "ana1" || user.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+users`).
		WithArgs(testID, "ana1", "Ana", "hash", testTime).
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.username"))

	_, err := s.CreateUser(context.Background(), "Ana", "ana1", "hash")
	if !errors.Is(err, models.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+id,\s*username,\s*name,\s*password_hash,\s*created_at\s+FROM\s+users`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListLists_ScopedAndOrdered(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+id,\s*user_id,\s*title,\s*created_at\s+FROM\s+list\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC`
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "created_at"}).
		AddRow("l-2", "u-1", "Newer", testTime.Add(time.Hour)).
		AddRow("l-1", "u-1", "Older", testTime)
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(rows)

	lists, err := s.ListLists(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListLists error: %v", err)
	}
	if len(lists) != 2 || lists[0].ID != "l-2" || lists[1].ID != "l-1" {
		t.Fatalf("unexpected lists: %+v", lists)
	}
}

func TestRenameList_NotFound(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)UPDATE\s+list\s+SET\s+title\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s+AND\s+user_id\s*=\s*\$3`).
		WithArgs("New title", "l-missing", "u-1").
		WillReturnError(sql.ErrNoRows)

	_, err := s.RenameList(context.Background(), "l-missing", "u-1", "New title")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteList_CascadesInOneTransaction(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)DELETE\s+FROM\s+items\s+WHERE\s+list_id\s*=\s*\$1`).
		WithArgs("l-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`(?s)DELETE\s+FROM\s+list\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs("l-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.DeleteList(context.Background(), "l-1", "u-1"); err != nil {
		t.Fatalf("DeleteList error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteList_ForeignListRollsBack(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)DELETE\s+FROM\s+items`).
		WithArgs("l-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`(?s)DELETE\s+FROM\s+list`).
		WithArgs("l-1", "u-intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.DeleteList(context.Background(), "l-1", "u-intruder")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateItem_DescriptionOnly(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	// Set clause must contain description and nothing else
	q := `(?s)UPDATE\s+items\s+SET\s+description\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2`
	rows := sqlmock.NewRows([]string{"id", "list_id", "description", "status", "created_at"}).
		AddRow("i-1", "l-1", "buy oat milk", "completed", testTime)
	mock.ExpectQuery(q).WithArgs("buy oat milk", "i-1", "u-1").WillReturnRows(rows)

	desc := "buy oat milk"
	item, err := s.UpdateItem(context.Background(), "i-1", "u-1", models.ItemPatch{Description: &desc})
	if err != nil {
		t.Fatalf("UpdateItem error: %v", err)
	}
	if item.Description != "buy oat milk" || item.Status != "completed" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestUpdateItem_StatusOnly(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `(?s)UPDATE\s+items\s+SET\s+status\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2`
	rows := sqlmock.NewRows([]string{"id", "list_id", "description", "status", "created_at"}).
		AddRow("i-1", "l-1", "buy milk", "completed", testTime)
	mock.ExpectQuery(q).WithArgs("completed", "i-1", "u-1").WillReturnRows(rows)

	status := models.StatusCompleted
	item, err := s.UpdateItem(context.Background(), "i-1", "u-1", models.ItemPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateItem error: %v", err)
	}
	if item.Description != "buy milk" {
		t.Fatalf("description clobbered: %+v", item)
	}
}

func TestUpdateItem_BothFields(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `(?s)UPDATE\s+items\s+SET\s+description\s*=\s*\$1,\s*status\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3`
	rows := sqlmock.NewRows([]string{"id", "list_id", "description", "status", "created_at"}).
		AddRow("i-1", "l-1", "new text", "completed", testTime)
	mock.ExpectQuery(q).WithArgs("new text", "completed", "i-1", "u-1").WillReturnRows(rows)

	desc, status := "new text", models.StatusCompleted
	_, err := s.UpdateItem(context.Background(), "i-1", "u-1", models.ItemPatch{Description: &desc, Status: &status})
	if err != nil {
		t.Fatalf("UpdateItem error: %v", err)
	}
}

func TestUpdateItem_EmptyPatch(t *testing.T) {
	s, _, db := newStoreWithMock(t)
	defer db.Close()

	// No expectations: an empty patch must be rejected before any statement
	_, err := s.UpdateItem(context.Background(), "i-1", "u-1", models.ItemPatch{})
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)DELETE\s+FROM\s+items\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("i-missing", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeleteItem(context.Background(), "i-missing", "u-1")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
