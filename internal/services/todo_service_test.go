package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func todoRow(id, userID uuid.UUID, title string, completed bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "user_id", "title", "completed", "created_at", "updated_at"}).
		AddRow(id.String(), userID.String(), title, completed, now, now)
}

func emptyTodoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "title", "completed", "created_at", "updated_at"})
}

func TestTodoService_List_NewestFirst(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewTodoService(gdb)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "todos" WHERE user_id = (.+) ORDER BY created_at DESC`).
		WillReturnRows(todoRow(uuid.New(), userID, "newer", false).
			AddRow(uuid.NewString(), userID.String(), "older", true, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour)))

	todos, err := svc.List(userID)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(todos))
	}
	if todos[0].Title != "newer" || todos[1].Title != "older" {
		t.Fatalf("order not preserved: %q, %q", todos[0].Title, todos[1].Title)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTodoService_List_Empty(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewTodoService(gdb)

	mock.ExpectQuery(`SELECT \* FROM "todos" WHERE user_id =`).
		WillReturnRows(emptyTodoRows())

	todos, err := svc.List(uuid.New())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if todos == nil || len(todos) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", todos)
	}
}

func TestTodoService_Create_TrimsTitle(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewTodoService(gdb)
	userID := uuid.New()
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO "todos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	todo, err := svc.Create(userID, "  groceries  ")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if todo.Title != "groceries" {
		t.Fatalf("title not trimmed: %q", todo.Title)
	}
	if todo.Completed {
		t.Fatal("new todo must start incomplete")
	}
	if todo.UserID != userID {
		t.Fatalf("owner mismatch: %v", todo.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTodoService_Create_EmptyTitle(t *testing.T) {
	gdb, _ := newTestDB(t)
	svc := NewTodoService(gdb)

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Create(uuid.New(), title); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle for %q, got %v", title, err)
		}
	}
}

func TestTodoService_Create_StoreDown(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewTodoService(gdb)

	mock.ExpectQuery(`INSERT INTO "todos"`).
		WillReturnError(errors.New("connection refused"))

	_, err := svc.Create(uuid.New(), "groceries")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestTodoService_Update_Completed(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewTodoService(gdb)
	userID := uuid.New()
	todoID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "todos" WHERE id = (.+) AND user_id =`).
		WillReturnRows(todoRow(todoID, userID, "groceries", false))
	mock.ExpectExec(`UPDATE "todos" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	completed := true
	todo, err := svc.Update(userID, todoID, nil, &completed)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !todo.Completed {
		t.Fatal("completed flag not applied")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTodoService_Update_EmptyTitleRejectedBeforeQuery(t *testing.T) {
	gdb, _ := newTestDB(t)
	svc := NewTodoService(gdb)

	title := "   "
	_, err := svc.Update(uuid.New(), uuid.New(), &title, nil)
	if !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}

// Ownership is the query predicate: a todo owned by someone else simply
// does not match, which reads as "not found".
func TestTodoService_Update_NotOwned(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewTodoService(gdb)
	attacker := uuid.New()
	todoID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "todos" WHERE id = (.+) AND user_id =`).
		WithArgs(todoID, attacker, 1).
		WillReturnRows(emptyTodoRows())

	title := "hijacked"
	_, err := svc.Update(attacker, todoID, &title, nil)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTodoService_Delete(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewTodoService(gdb)
	userID := uuid.New()
	todoID := uuid.New()

	mock.ExpectExec(`DELETE FROM "todos" WHERE id = (.+) AND user_id =`).
		WithArgs(todoID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Delete(userID, todoID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTodoService_Delete_NotOwned(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewTodoService(gdb)

	mock.ExpectExec(`DELETE FROM "todos" WHERE id = (.+) AND user_id =`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(uuid.New(), uuid.New())
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestTodoService_Delete_StoreDown(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewTodoService(gdb)

	mock.ExpectExec(`DELETE FROM "todos"`).
		WillReturnError(errors.New("connection refused"))

	err := svc.Delete(uuid.New(), uuid.New())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
