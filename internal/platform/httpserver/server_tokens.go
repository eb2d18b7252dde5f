package httpserver

import (
	"net/http"

	httptransport "taskboard/contexts/taskboard/board-service/transport/http"
)

func (s *Server) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	var req httptransport.CreateTokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.board.Handler.CreateTokenHandler(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
