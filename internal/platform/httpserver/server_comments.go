package httpserver

import (
	"net/http"

	httptransport "taskboard/contexts/taskboard/board-service/transport/http"
)

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	scope, err := parseCardScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	var req httptransport.CreateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.board.Handler.CreateCommentHandler(r.Context(), requestor, scope, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRequestor(w, r); !ok {
		return
	}
	scope, err := parseCardScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	resp, err := s.board.Handler.ListCommentsHandler(r.Context(), scope)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetComment(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRequestor(w, r); !ok {
		return
	}
	scope, err := parseCommentScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	resp, err := s.board.Handler.GetCommentHandler(r.Context(), scope)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	scope, err := parseCommentScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	var req httptransport.UpdateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.board.Handler.UpdateCommentHandler(r.Context(), requestor, scope, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	scope, err := parseCommentScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	if err := s.board.Handler.DeleteCommentHandler(r.Context(), requestor, scope); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
