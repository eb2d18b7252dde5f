package httpserver

import (
	"net/http"
	"testing"

	httptransport "taskboard/contexts/taskboard/board-service/transport/http"
)

func TestCreateUserAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user := env.registerUser(t, "alice@example.com", "strong password")
	if user.ID == 0 {
		t.Fatalf("expected assigned user id")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %q", user.Email)
	}

	token := env.login(t, "alice@example.com", "strong password")

	resp := env.do(t, http.MethodGet, "/users/me", token, nil)
	requireStatus(t, resp, http.StatusOK)
	var me httptransport.UserDTO
	decodeResponse(t, resp, &me)
	if me.ID != user.ID || me.Email != user.Email {
		t.Fatalf("expected /users/me to return the registered user, got %+v", me)
	}
}

func TestCreateUserNormalizesEmailCase(t *testing.T) {
	env := newTestEnv(t)

	user := env.registerUser(t, "Bob@Example.COM", "strong password")
	if user.Email != "bob@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}

	// Login with any casing of the same address.
	env.login(t, "BOB@example.com", "strong password")
}

func TestCreateUserRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/users", "", httptransport.CreateUserRequest{
		Email:    "not-an-email",
		Password: "strong password",
	})
	requireErrorCode(t, resp, http.StatusBadRequest, "invalid_input")

	resp = env.do(t, http.MethodPost, "/users", "", httptransport.CreateUserRequest{
		Email:    "carol@example.com",
		Password: "short",
	})
	requireErrorCode(t, resp, http.StatusBadRequest, "invalid_input")
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.registerUser(t, "dave@example.com", "strong password")
	resp := env.do(t, http.MethodPost, "/users", "", httptransport.CreateUserRequest{
		Email:    "dave@example.com",
		Password: "another password",
	})
	requireErrorCode(t, resp, http.StatusConflict, "email_already_in_use")
}

func TestLoginFailsWithWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	env.registerUser(t, "erin@example.com", "strong password")
	resp := env.do(t, http.MethodPost, "/tokens/auth", "", httptransport.CreateTokenRequest{
		Email:    "erin@example.com",
		Password: "wrong password",
	})
	requireErrorCode(t, resp, http.StatusUnauthorized, "invalid_credentials")

	// Unknown user is indistinguishable from a wrong password.
	resp = env.do(t, http.MethodPost, "/tokens/auth", "", httptransport.CreateTokenRequest{
		Email:    "nobody@example.com",
		Password: "strong password",
	})
	requireErrorCode(t, resp, http.StatusUnauthorized, "invalid_credentials")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/users", "", nil)
	requireErrorCode(t, resp, http.StatusUnauthorized, "not_logged_in")

	resp = env.do(t, http.MethodGet, "/users/me", "garbage-token", nil)
	requireErrorCode(t, resp, http.StatusUnauthorized, "not_logged_in")
}

func TestTokenForDeletedUserIsRejected(t *testing.T) {
	env := newTestEnv(t)

	user, token := env.registerAndLogin(t, "frank@example.com")
	resp := env.do(t, http.MethodDelete, userPath(user.ID), token, nil)
	requireStatus(t, resp, http.StatusNoContent)

	resp = env.do(t, http.MethodGet, "/users/me", token, nil)
	requireErrorCode(t, resp, http.StatusUnauthorized, "not_logged_in")
}

func TestListAndGetUsers(t *testing.T) {
	env := newTestEnv(t)

	alice, token := env.registerAndLogin(t, "alice@example.com")
	bob := env.registerUser(t, "bob@example.com", "strong password")

	resp := env.do(t, http.MethodGet, "/users", token, nil)
	requireStatus(t, resp, http.StatusOK)
	var users []httptransport.UserDTO
	decodeResponse(t, resp, &users)
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	// Any authenticated user can read any other user.
	resp = env.do(t, http.MethodGet, userPath(bob.ID), token, nil)
	requireStatus(t, resp, http.StatusOK)
	var fetched httptransport.UserDTO
	decodeResponse(t, resp, &fetched)
	if fetched.ID != bob.ID {
		t.Fatalf("expected user %d, got %d", bob.ID, fetched.ID)
	}

	resp = env.do(t, http.MethodGet, userPath(alice.ID+bob.ID+100), token, nil)
	requireErrorCode(t, resp, http.StatusNotFound, "not_found")
}

func TestUpdateUserSelfOnly(t *testing.T) {
	env := newTestEnv(t)

	alice, aliceToken := env.registerAndLogin(t, "alice@example.com")
	bob, _ := env.registerAndLogin(t, "bob@example.com")

	resp := env.do(t, http.MethodPut, userPath(alice.ID), aliceToken, httptransport.UpdateUserRequest{
		Email: strPtr("alice+new@example.com"),
	})
	requireStatus(t, resp, http.StatusOK)
	var updated httptransport.UserDTO
	decodeResponse(t, resp, &updated)
	if updated.Email != "alice+new@example.com" {
		t.Fatalf("expected updated email, got %q", updated.Email)
	}

	// A member cannot mutate another user's account.
	resp = env.do(t, http.MethodPut, userPath(bob.ID), aliceToken, httptransport.UpdateUserRequest{
		Email: strPtr("hijack@example.com"),
	})
	requireErrorCode(t, resp, http.StatusForbidden, "forbidden")

	resp = env.do(t, http.MethodDelete, userPath(bob.ID), aliceToken, nil)
	requireErrorCode(t, resp, http.StatusForbidden, "forbidden")
}

func TestAdminCanMutateOtherUsers(t *testing.T) {
	env := newTestEnv(t)

	admin, adminToken := env.registerAndLogin(t, "admin@example.com")
	env.store.PromoteToAdmin(admin.ID)
	member := env.registerUser(t, "member@example.com", "strong password")

	resp := env.do(t, http.MethodPut, userPath(member.ID), adminToken, httptransport.UpdateUserRequest{
		Email: strPtr("member+moved@example.com"),
	})
	requireStatus(t, resp, http.StatusOK)

	resp = env.do(t, http.MethodDelete, userPath(member.ID), adminToken, nil)
	requireStatus(t, resp, http.StatusNoContent)

	resp = env.do(t, http.MethodGet, userPath(member.ID), adminToken, nil)
	requireErrorCode(t, resp, http.StatusNotFound, "not_found")
}

func TestUpdateUserEmailConflict(t *testing.T) {
	env := newTestEnv(t)

	alice, token := env.registerAndLogin(t, "alice@example.com")
	env.registerUser(t, "bob@example.com", "strong password")

	resp := env.do(t, http.MethodPut, userPath(alice.ID), token, httptransport.UpdateUserRequest{
		Email: strPtr("bob@example.com"),
	})
	requireErrorCode(t, resp, http.StatusConflict, "email_already_in_use")

	// Case variants of the taken address collide too.
	resp = env.do(t, http.MethodPut, userPath(alice.ID), token, httptransport.UpdateUserRequest{
		Email: strPtr("BOB@example.com"),
	})
	requireErrorCode(t, resp, http.StatusConflict, "email_already_in_use")
}

func TestUpdateUserValidatesFields(t *testing.T) {
	env := newTestEnv(t)

	alice, token := env.registerAndLogin(t, "alice@example.com")

	resp := env.do(t, http.MethodPut, userPath(alice.ID), token, httptransport.UpdateUserRequest{
		Email: strPtr("not-an-email"),
	})
	requireErrorCode(t, resp, http.StatusBadRequest, "invalid_input")

	resp = env.do(t, http.MethodPut, userPath(alice.ID), token, httptransport.UpdateUserRequest{
		Password: strPtr("short"),
	})
	requireErrorCode(t, resp, http.StatusBadRequest, "invalid_input")
}

func TestMalformedUserIDIsRejected(t *testing.T) {
	env := newTestEnv(t)

	_, token := env.registerAndLogin(t, "alice@example.com")

	resp := env.do(t, http.MethodGet, "/users/abc", token, nil)
	requireErrorCode(t, resp, http.StatusBadRequest, "invalid_path_parameter")
}
