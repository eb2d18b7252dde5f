package application

import (
	"taskboard/contexts/taskboard/board-service/domain/entities"
	domainerrors "taskboard/contexts/taskboard/board-service/domain/errors"
)

// Operation classifies what a request wants to do with a resource. Reads are
// not owner-restricted; mutations are.
type Operation int

const (
	OpRead Operation = iota
	OpCreate
	OpUpdate
	OpDelete
)

func (op Operation) isMutation() bool {
	return op != OpRead
}

// Decision is a tagged authorization verdict.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionForbidden
)

// decideOwnerScoped is the self-or-admin policy for any operation whose path
// carries a userId segment. It runs before any existence lookup: a
// mismatched-owner mutation is forbidden even when the target does not exist.
// Reads pass for any authenticated requestor; whether the resource is visible
// is then decided purely by ownership-chain resolution.
func decideOwnerScoped(requestor entities.Requestor, pathUserID int64, op Operation) Decision {
	if !op.isMutation() {
		return DecisionAllow
	}
	if requestor.IsAdmin() {
		return DecisionAllow
	}
	if requestor.ID == pathUserID {
		return DecisionAllow
	}
	return DecisionForbidden
}

// ensureOwnerScoped converts the verdict into the domain error the transport
// layer maps to 403.
func ensureOwnerScoped(requestor entities.Requestor, pathUserID int64, op Operation) error {
	if decideOwnerScoped(requestor, pathUserID, op) == DecisionForbidden {
		return domainerrors.ErrForbidden
	}
	return nil
}

// ensureAuthor is the author-only policy for comment mutation. It is checked
// after the ownership chain resolves and is independent of self-or-admin:
// admins do not bypass it.
func ensureAuthor(requestor entities.Requestor, authorID int64) error {
	if requestor.ID != authorID {
		return domainerrors.ErrForbidden
	}
	return nil
}
