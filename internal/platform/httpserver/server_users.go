package httpserver

import (
	"net/http"

	httptransport "taskboard/contexts/taskboard/board-service/transport/http"
)

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req httptransport.CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.board.Handler.CreateUserHandler(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRequestor(w, r); !ok {
		return
	}
	resp, err := s.board.Handler.ListUsersHandler(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	user := requestor.ToUser()
	writeJSON(w, http.StatusOK, httptransport.UserDTO{ID: user.ID, Email: user.Email})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRequestor(w, r); !ok {
		return
	}
	userID, err := parseUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	resp, err := s.board.Handler.GetUserHandler(r.Context(), userID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	userID, err := parseUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	var req httptransport.UpdateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.board.Handler.UpdateUserHandler(r.Context(), requestor, userID, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	userID, err := parseUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	if err := s.board.Handler.DeleteUserHandler(r.Context(), requestor, userID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
