package httpserver

import (
	"net/http"

	httptransport "taskboard/contexts/taskboard/board-service/transport/http"
)

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	scope, err := parseColumnScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	var req httptransport.CreateCardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.board.Handler.CreateCardHandler(r.Context(), requestor, scope, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRequestor(w, r); !ok {
		return
	}
	scope, err := parseColumnScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	resp, err := s.board.Handler.ListCardsHandler(r.Context(), scope)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRequestor(w, r); !ok {
		return
	}
	scope, err := parseCardScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	resp, err := s.board.Handler.GetCardHandler(r.Context(), scope)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	scope, err := parseCardScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	var req httptransport.UpdateCardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.board.Handler.UpdateCardHandler(r.Context(), requestor, scope, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	requestor, ok := s.requireRequestor(w, r)
	if !ok {
		return
	}
	scope, err := parseCardScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path_parameter", err.Error())
		return
	}
	if err := s.board.Handler.DeleteCardHandler(r.Context(), requestor, scope); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
