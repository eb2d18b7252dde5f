package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"taskboard/contexts/taskboard/board-service/ports"
)

// Path ids are validated as well-formed integers before any lookup or
// authorization check runs; malformed segments fail fast with 400.

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path parameter %s must be an integer", name)
	}
	return id, nil
}

func parseUserID(r *http.Request) (int64, error) {
	return parsePathID(r, "userId")
}

func parseColumnScope(r *http.Request) (ports.ColumnScope, error) {
	userID, err := parseUserID(r)
	if err != nil {
		return ports.ColumnScope{}, err
	}
	columnID, err := parsePathID(r, "columnId")
	if err != nil {
		return ports.ColumnScope{}, err
	}
	return ports.ColumnScope{UserID: userID, ColumnID: columnID}, nil
}

func parseCardScope(r *http.Request) (ports.CardScope, error) {
	columnScope, err := parseColumnScope(r)
	if err != nil {
		return ports.CardScope{}, err
	}
	cardID, err := parsePathID(r, "cardId")
	if err != nil {
		return ports.CardScope{}, err
	}
	return ports.CardScope{
		UserID:   columnScope.UserID,
		ColumnID: columnScope.ColumnID,
		CardID:   cardID,
	}, nil
}

func parseCommentScope(r *http.Request) (ports.CommentScope, error) {
	cardScope, err := parseCardScope(r)
	if err != nil {
		return ports.CommentScope{}, err
	}
	commentID, err := parsePathID(r, "commentId")
	if err != nil {
		return ports.CommentScope{}, err
	}
	return ports.CommentScope{
		UserID:    cardScope.UserID,
		ColumnID:  cardScope.ColumnID,
		CardID:    cardScope.CardID,
		CommentID: commentID,
	}, nil
}
