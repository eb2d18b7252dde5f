package ports

import (
	"context"

	"taskboard/contexts/taskboard/board-service/domain/entities"
)

// Scope structs carry the validated ancestor ids for one route. Each nested
// resource is resolved with its entire chain in a single lookup so that a
// correct leaf id under the wrong ancestors stays indistinguishable from a
// missing one.

type ColumnScope struct {
	UserID   int64
	ColumnID int64
}

type CardScope struct {
	UserID   int64
	ColumnID int64
	CardID   int64
}

type CommentScope struct {
	UserID    int64
	ColumnID  int64
	CardID    int64
	CommentID int64
}

// Partial-update inputs: nil fields are left unchanged.

type UpdateUserInput struct {
	Email        *string
	PasswordHash *string
}

type UpdateColumnInput struct {
	Name *string
}

type UpdateCardInput struct {
	Name        *string
	Description *string
}

type UpdateCommentInput struct {
	Content *string
}

type UserRepository interface {
	// CreateUser inserts the public user row and its credential record in one
	// transaction, or neither. A duplicate email returns ErrEmailAlreadyInUse.
	CreateUser(ctx context.Context, email string, passwordHash string) (entities.User, error)
	GetUser(ctx context.Context, userID int64) (entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, userID int64, input UpdateUserInput) (entities.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	// GetRequestor re-resolves email and role from storage for the user id
	// carried by a validated token.
	GetRequestor(ctx context.Context, userID int64) (entities.Requestor, error)
	// GetCredentialByEmail looks up a user and its credential record by
	// normalized email for password verification.
	GetCredentialByEmail(ctx context.Context, email string) (entities.User, entities.Credential, error)
}

type ColumnRepository interface {
	CreateColumn(ctx context.Context, ownerID int64, name string) (entities.Column, error)
	GetColumn(ctx context.Context, scope ColumnScope) (entities.Column, error)
	ListColumns(ctx context.Context, ownerID int64) ([]entities.Column, error)
	UpdateColumn(ctx context.Context, columnID int64, input UpdateColumnInput) (entities.Column, error)
	DeleteColumn(ctx context.Context, columnID int64) error
}

type CardRepository interface {
	CreateCard(ctx context.Context, columnID int64, name string, description string) (entities.Card, error)
	GetCard(ctx context.Context, scope CardScope) (entities.Card, error)
	ListCards(ctx context.Context, scope ColumnScope) ([]entities.Card, error)
	UpdateCard(ctx context.Context, cardID int64, input UpdateCardInput) (entities.Card, error)
	DeleteCard(ctx context.Context, cardID int64) error
}

type CommentRepository interface {
	CreateComment(ctx context.Context, cardID int64, authorID int64, content string) (entities.Comment, error)
	GetComment(ctx context.Context, scope CommentScope) (entities.Comment, error)
	ListComments(ctx context.Context, scope CardScope) ([]entities.Comment, error)
	UpdateComment(ctx context.Context, commentID int64, input UpdateCommentInput) (entities.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

// PasswordHasher hides the hashing scheme from the application layer.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(digest string, plain string) bool
}

// TokenIssuer mints and validates opaque bearer tokens. The payload carries
// only the user id.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
	Validate(token string) (int64, error)
}
