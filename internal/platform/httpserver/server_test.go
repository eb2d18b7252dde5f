package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	boardservice "taskboard/contexts/taskboard/board-service"
	"taskboard/contexts/taskboard/board-service/adapters/memory"
	httptransport "taskboard/contexts/taskboard/board-service/transport/http"
)

type testEnv struct {
	ts    *httptest.Server
	store *memory.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	module := boardservice.NewInMemoryModule(logger)
	server := New(module, logger, ":0", []string{"*"})
	ts := httptest.NewServer(server.handler())
	t.Cleanup(ts.Close)
	return &testEnv{ts: ts, store: module.Store}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.ts.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func requireStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		t.Fatalf("expected status %d, got %d (body: %s)", want, resp.StatusCode, raw)
	}
}

func requireErrorCode(t *testing.T, resp *http.Response, wantStatus int, wantCode string) {
	t.Helper()
	if resp.StatusCode != wantStatus {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		t.Fatalf("expected status %d, got %d (body: %s)", wantStatus, resp.StatusCode, raw)
	}
	var errResp httptransport.ErrorResponse
	decodeResponse(t, resp, &errResp)
	if errResp.Code != wantCode {
		t.Fatalf("expected error code %q, got %q", wantCode, errResp.Code)
	}
}

func (e *testEnv) registerUser(t *testing.T, email, password string) httptransport.UserDTO {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/users", "", httptransport.CreateUserRequest{
		Email:    email,
		Password: password,
	})
	requireStatus(t, resp, http.StatusCreated)
	var user httptransport.UserDTO
	decodeResponse(t, resp, &user)
	return user
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/tokens/auth", "", httptransport.CreateTokenRequest{
		Email:    email,
		Password: password,
	})
	requireStatus(t, resp, http.StatusCreated)
	var tokenResp httptransport.CreateTokenResponse
	decodeResponse(t, resp, &tokenResp)
	if tokenResp.Token == "" {
		t.Fatalf("expected non-empty token")
	}
	return tokenResp.Token
}

func (e *testEnv) registerAndLogin(t *testing.T, email string) (httptransport.UserDTO, string) {
	t.Helper()
	user := e.registerUser(t, email, "correct horse battery")
	return user, e.login(t, email, "correct horse battery")
}

func (e *testEnv) createColumn(t *testing.T, token string, userID int64, name string) httptransport.ColumnDTO {
	t.Helper()
	resp := e.do(t, http.MethodPost, userPath(userID)+"/columns", token, httptransport.CreateColumnRequest{Name: name})
	requireStatus(t, resp, http.StatusCreated)
	var column httptransport.ColumnDTO
	decodeResponse(t, resp, &column)
	return column
}

func (e *testEnv) createCard(t *testing.T, token string, userID, columnID int64, name string) httptransport.CardDTO {
	t.Helper()
	resp := e.do(t, http.MethodPost, columnPath(userID, columnID)+"/cards", token, httptransport.CreateCardRequest{
		Name:        name,
		Description: "some work to do",
	})
	requireStatus(t, resp, http.StatusCreated)
	var card httptransport.CardDTO
	decodeResponse(t, resp, &card)
	return card
}

func (e *testEnv) createComment(t *testing.T, token string, userID, columnID, cardID int64, content string) httptransport.CommentDTO {
	t.Helper()
	resp := e.do(t, http.MethodPost, cardPath(userID, columnID, cardID)+"/comments", token, httptransport.CreateCommentRequest{
		Content: content,
	})
	requireStatus(t, resp, http.StatusCreated)
	var comment httptransport.CommentDTO
	decodeResponse(t, resp, &comment)
	return comment
}

func userPath(userID int64) string {
	return "/users/" + itoa(userID)
}

func columnPath(userID, columnID int64) string {
	return userPath(userID) + "/columns/" + itoa(columnID)
}

func cardPath(userID, columnID, cardID int64) string {
	return columnPath(userID, columnID) + "/cards/" + itoa(cardID)
}

func commentPath(userID, columnID, cardID, commentID int64) string {
	return cardPath(userID, columnID, cardID) + "/comments/" + itoa(commentID)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func strPtr(s string) *string {
	return &s
}
