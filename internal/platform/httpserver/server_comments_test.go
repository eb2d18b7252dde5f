package httpserver

import (
	"net/http"
	"strings"
	"testing"

	httptransport "taskboard/contexts/taskboard/board-service/transport/http"
)

func TestCommentLifecycle(t *testing.T) {
	env := newTestEnv(t)

	alice, token := env.registerAndLogin(t, "alice@example.com")
	column := env.createColumn(t, token, alice.ID, "To Do")
	card := env.createCard(t, token, alice.ID, column.ID, "Write report")

	comment := env.createComment(t, token, alice.ID, column.ID, card.ID, "looks good")
	if comment.AuthorID != alice.ID {
		t.Fatalf("expected author %d, got %d", alice.ID, comment.AuthorID)
	}
	if comment.CardID != card.ID {
		t.Fatalf("expected comment on card %d, got %d", card.ID, comment.CardID)
	}

	resp := env.do(t, http.MethodPut, commentPath(alice.ID, column.ID, card.ID, comment.ID), token, httptransport.UpdateCommentRequest{
		Content: strPtr("looks great"),
	})
	requireStatus(t, resp, http.StatusOK)
	var updated httptransport.CommentDTO
	decodeResponse(t, resp, &updated)
	if updated.Content != "looks great" {
		t.Fatalf("expected updated content, got %q", updated.Content)
	}

	resp = env.do(t, http.MethodGet, cardPath(alice.ID, column.ID, card.ID)+"/comments", token, nil)
	requireStatus(t, resp, http.StatusOK)
	var comments []httptransport.CommentDTO
	decodeResponse(t, resp, &comments)
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}

	resp = env.do(t, http.MethodDelete, commentPath(alice.ID, column.ID, card.ID, comment.ID), token, nil)
	requireStatus(t, resp, http.StatusNoContent)

	resp = env.do(t, http.MethodGet, commentPath(alice.ID, column.ID, card.ID, comment.ID), token, nil)
	requireErrorCode(t, resp, http.StatusNotFound, "not_found")
}

func TestCommentValidation(t *testing.T) {
	env := newTestEnv(t)

	alice, token := env.registerAndLogin(t, "alice@example.com")
	column := env.createColumn(t, token, alice.ID, "To Do")
	card := env.createCard(t, token, alice.ID, column.ID, "Write report")

	resp := env.do(t, http.MethodPost, cardPath(alice.ID, column.ID, card.ID)+"/comments", token, httptransport.CreateCommentRequest{
		Content: "",
	})
	requireErrorCode(t, resp, http.StatusBadRequest, "invalid_input")

	resp = env.do(t, http.MethodPost, cardPath(alice.ID, column.ID, card.ID)+"/comments", token, httptransport.CreateCommentRequest{
		Content: strings.Repeat("c", 256),
	})
	requireErrorCode(t, resp, http.StatusBadRequest, "invalid_input")
}

func TestCommentMutationRestrictedToAuthor(t *testing.T) {
	env := newTestEnv(t)

	admin, adminToken := env.registerAndLogin(t, "admin@example.com")
	env.store.PromoteToAdmin(admin.ID)
	member, memberToken := env.registerAndLogin(t, "member@example.com")

	column := env.createColumn(t, memberToken, member.ID, "Board")
	card := env.createCard(t, memberToken, member.ID, column.ID, "Task")

	// Admin may comment on anyone's card.
	adminComment := env.createComment(t, adminToken, member.ID, column.ID, card.ID, "please split this task")
	if adminComment.AuthorID != admin.ID {
		t.Fatalf("expected admin author %d, got %d", admin.ID, adminComment.AuthorID)
	}

	// The board owner is not the author, so they cannot edit or delete it.
	resp := env.do(t, http.MethodPut, commentPath(member.ID, column.ID, card.ID, adminComment.ID), memberToken, httptransport.UpdateCommentRequest{
		Content: strPtr("silenced"),
	})
	requireErrorCode(t, resp, http.StatusForbidden, "forbidden")

	resp = env.do(t, http.MethodDelete, commentPath(member.ID, column.ID, card.ID, adminComment.ID), memberToken, nil)
	requireErrorCode(t, resp, http.StatusForbidden, "forbidden")

	// Admin privileges do not bypass authorship either.
	memberComment := env.createComment(t, memberToken, member.ID, column.ID, card.ID, "will do")
	resp = env.do(t, http.MethodPut, commentPath(member.ID, column.ID, card.ID, memberComment.ID), adminToken, httptransport.UpdateCommentRequest{
		Content: strPtr("edited by admin"),
	})
	requireErrorCode(t, resp, http.StatusForbidden, "forbidden")

	// Each author can still mutate their own comment.
	resp = env.do(t, http.MethodDelete, commentPath(member.ID, column.ID, card.ID, adminComment.ID), adminToken, nil)
	requireStatus(t, resp, http.StatusNoContent)
}

func TestCommentScopedLookupMismatch(t *testing.T) {
	env := newTestEnv(t)

	alice, token := env.registerAndLogin(t, "alice@example.com")
	first := env.createColumn(t, token, alice.ID, "To Do")
	second := env.createColumn(t, token, alice.ID, "Done")
	firstCard := env.createCard(t, token, alice.ID, first.ID, "Task A")
	secondCard := env.createCard(t, token, alice.ID, second.ID, "Task B")
	comment := env.createComment(t, token, alice.ID, first.ID, firstCard.ID, "on task A")

	// The comment is not reachable through a different card's path.
	resp := env.do(t, http.MethodGet, commentPath(alice.ID, second.ID, secondCard.ID, comment.ID), token, nil)
	requireErrorCode(t, resp, http.StatusNotFound, "not_found")
}

func TestCommentReadableAcrossTenants(t *testing.T) {
	env := newTestEnv(t)

	bob, bobToken := env.registerAndLogin(t, "bob@example.com")
	_, aliceToken := env.registerAndLogin(t, "alice@example.com")
	column := env.createColumn(t, bobToken, bob.ID, "Bob board")
	card := env.createCard(t, bobToken, bob.ID, column.ID, "Bob task")
	comment := env.createComment(t, bobToken, bob.ID, column.ID, card.ID, "bob note")

	resp := env.do(t, http.MethodGet, commentPath(bob.ID, column.ID, card.ID, comment.ID), aliceToken, nil)
	requireStatus(t, resp, http.StatusOK)

	// But another member cannot comment on Bob's card.
	resp = env.do(t, http.MethodPost, cardPath(bob.ID, column.ID, card.ID)+"/comments", aliceToken, httptransport.CreateCommentRequest{
		Content: "drive-by comment",
	})
	requireErrorCode(t, resp, http.StatusForbidden, "forbidden")
}
