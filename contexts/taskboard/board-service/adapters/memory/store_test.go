package memory

import (
	"context"
	"errors"
	"testing"

	domainerrors "taskboard/contexts/taskboard/board-service/domain/errors"
	"taskboard/contexts/taskboard/board-service/ports"
)

func TestStoreScopedLookups(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "alice@example.com", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	bob, err := store.CreateUser(ctx, "bob@example.com", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	column, err := store.CreateColumn(ctx, alice.ID, "To Do")
	if err != nil {
		t.Fatalf("create column: %v", err)
	}
	card, err := store.CreateCard(ctx, column.ID, "Task", "desc")
	if err != nil {
		t.Fatalf("create card: %v", err)
	}
	comment, err := store.CreateComment(ctx, card.ID, alice.ID, "note")
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	// The full ancestor chain must match for a lookup to succeed.
	if _, err := store.GetColumn(ctx, ports.ColumnScope{UserID: bob.ID, ColumnID: column.ID}); !errors.Is(err, domainerrors.ErrColumnNotFound) {
		t.Fatalf("expected column not found under wrong owner, got %v", err)
	}
	if _, err := store.GetCard(ctx, ports.CardScope{UserID: bob.ID, ColumnID: column.ID, CardID: card.ID}); !errors.Is(err, domainerrors.ErrCardNotFound) {
		t.Fatalf("expected card not found under wrong owner, got %v", err)
	}
	if _, err := store.GetComment(ctx, ports.CommentScope{UserID: alice.ID, ColumnID: column.ID, CardID: card.ID + 1, CommentID: comment.ID}); !errors.Is(err, domainerrors.ErrCommentNotFound) {
		t.Fatalf("expected comment not found under wrong card, got %v", err)
	}

	got, err := store.GetComment(ctx, ports.CommentScope{UserID: alice.ID, ColumnID: column.ID, CardID: card.ID, CommentID: comment.ID})
	if err != nil {
		t.Fatalf("get comment through correct chain: %v", err)
	}
	if got.AuthorID != alice.ID {
		t.Fatalf("expected author %d, got %d", alice.ID, got.AuthorID)
	}
}

func TestStoreDuplicateEmail(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.CreateUser(ctx, "alice@example.com", "hash"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := store.CreateUser(ctx, "alice@example.com", "hash"); !errors.Is(err, domainerrors.ErrEmailAlreadyInUse) {
		t.Fatalf("expected duplicate email rejection, got %v", err)
	}
}

func TestStoreDeleteUserCascades(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "alice@example.com", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	column, err := store.CreateColumn(ctx, alice.ID, "To Do")
	if err != nil {
		t.Fatalf("create column: %v", err)
	}
	card, err := store.CreateCard(ctx, column.ID, "Task", "desc")
	if err != nil {
		t.Fatalf("create card: %v", err)
	}
	if _, err := store.CreateComment(ctx, card.ID, alice.ID, "note"); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := store.DeleteUser(ctx, alice.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := store.GetColumn(ctx, ports.ColumnScope{UserID: alice.ID, ColumnID: column.ID}); !errors.Is(err, domainerrors.ErrColumnNotFound) {
		t.Fatalf("expected column gone after user delete, got %v", err)
	}
	if _, _, err := store.GetCredentialByEmail(ctx, "alice@example.com"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected credential gone after user delete, got %v", err)
	}
}
