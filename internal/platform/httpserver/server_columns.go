package httpserver

import (
	"net/http"

	httptransport "taskboard/contexts/taskboard/board-service/transport/http"
)

func (s *Server) handleCreateColumn(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	userID, err := parseUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	var req httptransport.CreateColumnRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.board.Handler.CreateColumnHandler(r.Context(), requestor, userID, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListColumns(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRequestor(w, r); !ok {
		return
	}
	userID, err := parseUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	resp, err := s.board.Handler.ListColumnsHandler(r.Context(), userID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetColumn(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRequestor(w, r); !ok {
		return
	}
	scope, err := parseColumnScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	resp, err := s.board.Handler.GetColumnHandler(r.Context(), scope)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateColumn(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	scope, err := parseColumnScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	var req httptransport.UpdateColumnRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.board.Handler.UpdateColumnHandler(r.Context(), requestor, scope, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteColumn(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	scope, err := parseColumnScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	if err := s.board.Handler.DeleteColumnHandler(r.Context(), requestor, scope); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
