package application

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"taskboard/contexts/taskboard/board-service/domain/entities"
	domainerrors "taskboard/contexts/taskboard/board-service/domain/errors"
	"taskboard/contexts/taskboard/board-service/ports"
)

// Service implements every board operation. Each mutation follows the same
// fixed order: owner-scoped authorization, field validation, ownership-chain
// resolution, author check where applicable, then the write itself.
type Service struct {
	Users    ports.UserRepository
	Columns  ports.ColumnRepository
	Cards    ports.CardRepository
	Comments ports.CommentRepository
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenIssuer
	Logger   *slog.Logger
}

// ResolveRequestor turns a raw bearer token into the authenticated caller.
// The token payload is trusted only for the user id; email and role are
// re-read from storage. A token for a deleted user fails resolution.
func (s Service) ResolveRequestor(ctx context.Context, rawToken string) (entities.Requestor, error) {
	userID, err := s.Tokens.Validate(rawToken)
	if err != nil {
		return entities.Requestor{}, domainerrors.ErrUnauthenticated
	}
	requestor, err := s.Users.GetRequestor(ctx, userID)
	if err != nil {
		return entities.Requestor{}, domainerrors.ErrUnauthenticated
	}
	return requestor, nil
}

// IssueToken authenticates an email/password pair and mints a bearer token.
// Missing user and wrong password are indistinguishable to the caller.
func (s Service) IssueToken(ctx context.Context, email string, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", domainerrors.ErrInvalidCredentials
	}
	user, credential, err := s.Users.GetCredentialByEmail(ctx, email)
	if err != nil {
		return "", domainerrors.ErrInvalidCredentials
	}
	if !s.Hasher.Verify(credential.PasswordHash, password) {
		return "", domainerrors.ErrInvalidCredentials
	}
	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return "", err
	}
	resolveLogger(s.Logger).Info("token issued",
		"event", "token_issued",
		"module", "taskboard/board-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return token, nil
}

func (s Service) CreateUser(ctx context.Context, email string, password string) (entities.User, error) {
	email = normalizeEmail(email)
	if !validEmail(email) || len(password) < entities.PasswordMinLength {
		return entities.User{}, domainerrors.ErrInvalidUserInput
	}
	passwordHash, err := s.Hasher.Hash(password)
	if err != nil {
		return entities.User{}, err
	}
	user, err := s.Users.CreateUser(ctx, email, passwordHash)
	if err != nil {
		return entities.User{}, err
	}
	resolveLogger(s.Logger).Info("user created",
		"event", "user_created",
		"module", "taskboard/board-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return user, nil
}

func (s Service) GetUser(ctx context.Context, userID int64) (entities.User, error) {
	return s.Users.GetUser(ctx, userID)
}

func (s Service) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.Users.ListUsers(ctx)
}

// UpdateUser applies a partial update. Role is not updatable through this
// path.
func (s Service) UpdateUser(
	ctx context.Context,
	requestor entities.Requestor,
	userID int64,
	email *string,
	password *string,
) (entities.User, error) {
	if err := ensureOwnerScoped(requestor, userID, OpUpdate); err != nil {
		return entities.User{}, err
	}

	input := ports.UpdateUserInput{}
	if email != nil {
		normalized := normalizeEmail(*email)
		if !validEmail(normalized) {
			return entities.User{}, domainerrors.ErrInvalidUserInput
		}
		input.Email = &normalized
	}
	if password != nil {
		if len(*password) < entities.PasswordMinLength {
			return entities.User{}, domainerrors.ErrInvalidUserInput
		}
		passwordHash, err := s.Hasher.Hash(*password)
		if err != nil {
			return entities.User{}, err
		}
		input.PasswordHash = &passwordHash
	}
	return s.Users.UpdateUser(ctx, userID, input)
}

func (s Service) DeleteUser(ctx context.Context, requestor entities.Requestor, userID int64) error {
	if err := ensureOwnerScoped(requestor, userID, OpDelete); err != nil {
		return err
	}
	if err := s.Users.DeleteUser(ctx, userID); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("user deleted",
		"event", "user_deleted",
		"module", "taskboard/board-service",
		"layer", "application",
		"user_id", userID,
		"requestor_id", requestor.ID,
	)
	return nil
}

func (s Service) CreateColumn(
	ctx context.Context,
	requestor entities.Requestor,
	userID int64,
	name string,
) (entities.Column, error) {
	if err := ensureOwnerScoped(requestor, userID, OpCreate); err != nil {
		return entities.Column{}, err
	}
	if !validBoundedString(name, entities.ColumnNameMaxLength) {
		return entities.Column{}, domainerrors.ErrInvalidColumnInput
	}
	if _, err := s.Users.GetUser(ctx, userID); err != nil {
		return entities.Column{}, err
	}
	return s.Columns.CreateColumn(ctx, userID, name)
}

func (s Service) GetColumn(ctx context.Context, scope ports.ColumnScope) (entities.Column, error) {
	return s.Columns.GetColumn(ctx, scope)
}

func (s Service) ListColumns(ctx context.Context, userID int64) ([]entities.Column, error) {
	if _, err := s.Users.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.Columns.ListColumns(ctx, userID)
}

func (s Service) UpdateColumn(
	ctx context.Context,
	requestor entities.Requestor,
	scope ports.ColumnScope,
	input ports.UpdateColumnInput,
) (entities.Column, error) {
	if err := ensureOwnerScoped(requestor, scope.UserID, OpUpdate); err != nil {
		return entities.Column{}, err
	}
	if input.Name != nil && !validBoundedString(*input.Name, entities.ColumnNameMaxLength) {
		return entities.Column{}, domainerrors.ErrInvalidColumnInput
	}
	column, err := s.Columns.GetColumn(ctx, scope)
	if err != nil {
		return entities.Column{}, err
	}
	return s.Columns.UpdateColumn(ctx, column.ID, input)
}

func (s Service) DeleteColumn(ctx context.Context, requestor entities.Requestor, scope ports.ColumnScope) error {
	if err := ensureOwnerScoped(requestor, scope.UserID, OpDelete); err != nil {
		return err
	}
	column, err := s.Columns.GetColumn(ctx, scope)
	if err != nil {
		return err
	}
	return s.Columns.DeleteColumn(ctx, column.ID)
}

func (s Service) CreateCard(
	ctx context.Context,
	requestor entities.Requestor,
	scope ports.ColumnScope,
	name string,
	description string,
) (entities.Card, error) {
	if err := ensureOwnerScoped(requestor, scope.UserID, OpCreate); err != nil {
		return entities.Card{}, err
	}
	if !validBoundedString(name, entities.CardNameMaxLength) ||
		len(description) > entities.CardDescriptionMaxLength {
		return entities.Card{}, domainerrors.ErrInvalidCardInput
	}
	column, err := s.Columns.GetColumn(ctx, scope)
	if err != nil {
		return entities.Card{}, err
	}
	return s.Cards.CreateCard(ctx, column.ID, name, description)
}

func (s Service) GetCard(ctx context.Context, scope ports.CardScope) (entities.Card, error) {
	return s.Cards.GetCard(ctx, scope)
}

func (s Service) ListCards(ctx context.Context, scope ports.ColumnScope) ([]entities.Card, error) {
	return s.Cards.ListCards(ctx, scope)
}

func (s Service) UpdateCard(
	ctx context.Context,
	requestor entities.Requestor,
	scope ports.CardScope,
	input ports.UpdateCardInput,
) (entities.Card, error) {
	if err := ensureOwnerScoped(requestor, scope.UserID, OpUpdate); err != nil {
		return entities.Card{}, err
	}
	if input.Name != nil && !validBoundedString(*input.Name, entities.CardNameMaxLength) {
		return entities.Card{}, domainerrors.ErrInvalidCardInput
	}
	if input.Description != nil && len(*input.Description) > entities.CardDescriptionMaxLength {
		return entities.Card{}, domainerrors.ErrInvalidCardInput
	}
	card, err := s.Cards.GetCard(ctx, scope)
	if err != nil {
		return entities.Card{}, err
	}
	return s.Cards.UpdateCard(ctx, card.ID, input)
}

func (s Service) DeleteCard(ctx context.Context, requestor entities.Requestor, scope ports.CardScope) error {
	if err := ensureOwnerScoped(requestor, scope.UserID, OpDelete); err != nil {
		return err
	}
	card, err := s.Cards.GetCard(ctx, scope)
	if err != nil {
		return err
	}
	return s.Cards.DeleteCard(ctx, card.ID)
}

// CreateComment records the requestor as author; the author id is never taken
// from the request body.
func (s Service) CreateComment(
	ctx context.Context,
	requestor entities.Requestor,
	scope ports.CardScope,
	content string,
) (entities.Comment, error) {
	if err := ensureOwnerScoped(requestor, scope.UserID, OpCreate); err != nil {
		return entities.Comment{}, err
	}
	if !validBoundedString(content, entities.CommentContentMaxLength) {
		return entities.Comment{}, domainerrors.ErrInvalidCommentInput
	}
	card, err := s.Cards.GetCard(ctx, scope)
	if err != nil {
		return entities.Comment{}, err
	}
	return s.Comments.CreateComment(ctx, card.ID, requestor.ID, content)
}

func (s Service) GetComment(ctx context.Context, scope ports.CommentScope) (entities.Comment, error) {
	return s.Comments.GetComment(ctx, scope)
}

func (s Service) ListComments(ctx context.Context, scope ports.CardScope) ([]entities.Comment, error) {
	return s.Comments.ListComments(ctx, scope)
}

func (s Service) UpdateComment(
	ctx context.Context,
	requestor entities.Requestor,
	scope ports.CommentScope,
	input ports.UpdateCommentInput,
) (entities.Comment, error) {
	if err := ensureOwnerScoped(requestor, scope.UserID, OpUpdate); err != nil {
		return entities.Comment{}, err
	}
	if input.Content != nil && !validBoundedString(*input.Content, entities.CommentContentMaxLength) {
		return entities.Comment{}, domainerrors.ErrInvalidCommentInput
	}
	comment, err := s.Comments.GetComment(ctx, scope)
	if err != nil {
		return entities.Comment{}, err
	}
	if err := ensureAuthor(requestor, comment.AuthorID); err != nil {
		return entities.Comment{}, err
	}
	return s.Comments.UpdateComment(ctx, comment.ID, input)
}

func (s Service) DeleteComment(ctx context.Context, requestor entities.Requestor, scope ports.CommentScope) error {
	if err := ensureOwnerScoped(requestor, scope.UserID, OpDelete); err != nil {
		return err
	}
	comment, err := s.Comments.GetComment(ctx, scope)
	if err != nil {
		return err
	}
	if err := ensureAuthor(requestor, comment.AuthorID); err != nil {
		return err
	}
	return s.Comments.DeleteComment(ctx, comment.ID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	parsed, err := mail.ParseAddress(email)
	return err == nil && parsed.Address == email
}

func validBoundedString(value string, max int) bool {
	return strings.TrimSpace(value) != "" && len(value) <= max
}
