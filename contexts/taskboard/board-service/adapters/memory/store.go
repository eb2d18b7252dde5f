package memory

import (
	"context"
	"sort"
	"sync"

	"taskboard/contexts/taskboard/board-service/domain/entities"
	domainerrors "taskboard/contexts/taskboard/board-service/domain/errors"
	"taskboard/contexts/taskboard/board-service/ports"
)

// Store is an in-memory adapter implementing every repository port. It is
// intended for tests and local development wiring. Deletes cascade to child
// rows, mirroring the Postgres foreign-key behavior.
type Store struct {
	mu sync.RWMutex

	users       map[int64]entities.User
	credentials map[int64]entities.Credential
	columns     map[int64]entities.Column
	cards       map[int64]entities.Card
	comments    map[int64]entities.Comment

	nextID int64
}

func NewStore() *Store {
	return &Store{
		users:       make(map[int64]entities.User),
		credentials: make(map[int64]entities.Credential),
		columns:     make(map[int64]entities.Column),
		cards:       make(map[int64]entities.Card),
		comments:    make(map[int64]entities.Comment),
	}
}

func (s *Store) allocateID() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) CreateUser(_ context.Context, email string, passwordHash string) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == email {
			return entities.User{}, domainerrors.ErrEmailAlreadyInUse
		}
	}

	user := entities.User{ID: s.allocateID(), Email: email}
	s.users[user.ID] = user
	s.credentials[user.ID] = entities.Credential{
		UserID:       user.ID,
		PasswordHash: passwordHash,
		Role:         entities.RoleMember,
	}
	return user, nil
}

func (s *Store) GetUser(_ context.Context, userID int64) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) ListUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.User, 0, len(s.users))
	for _, user := range s.users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) UpdateUser(_ context.Context, userID int64, input ports.UpdateUserInput) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	if input.Email != nil {
		for id, existing := range s.users {
			if id != userID && existing.Email == *input.Email {
				return entities.User{}, domainerrors.ErrEmailAlreadyInUse
			}
		}
		user.Email = *input.Email
	}
	if input.PasswordHash != nil {
		credential := s.credentials[userID]
		credential.PasswordHash = *input.PasswordHash
		s.credentials[userID] = credential
	}
	s.users[userID] = user
	return user, nil
}

func (s *Store) DeleteUser(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	delete(s.users, userID)
	delete(s.credentials, userID)
	for columnID, column := range s.columns {
		if column.OwnerID == userID {
			s.deleteColumnCascade(columnID)
		}
	}
	return nil
}

func (s *Store) GetRequestor(_ context.Context, userID int64) (entities.Requestor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.Requestor{}, domainerrors.ErrUserNotFound
	}
	credential := s.credentials[userID]
	return entities.Requestor{ID: user.ID, Email: user.Email, Role: credential.Role}, nil
}

func (s *Store) GetCredentialByEmail(_ context.Context, email string) (entities.User, entities.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, s.credentials[user.ID], nil
		}
	}
	return entities.User{}, entities.Credential{}, domainerrors.ErrUserNotFound
}

// PromoteToAdmin flips a user's role. Role changes are not reachable through
// the public API; tests use this to build admin requestors.
func (s *Store) PromoteToAdmin(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if credential, ok := s.credentials[userID]; ok {
		credential.Role = entities.RoleAdmin
		s.credentials[userID] = credential
	}
}

func (s *Store) CreateColumn(_ context.Context, ownerID int64, name string) (entities.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	column := entities.Column{ID: s.allocateID(), Name: name, OwnerID: ownerID}
	s.columns[column.ID] = column
	return column, nil
}

func (s *Store) GetColumn(_ context.Context, scope ports.ColumnScope) (entities.Column, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findColumn(scope)
}

func (s *Store) ListColumns(_ context.Context, ownerID int64) ([]entities.Column, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.Column, 0)
	for _, column := range s.columns {
		if column.OwnerID == ownerID {
			result = append(result, column)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) UpdateColumn(_ context.Context, columnID int64, input ports.UpdateColumnInput) (entities.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	column, ok := s.columns[columnID]
	if !ok {
		return entities.Column{}, domainerrors.ErrColumnNotFound
	}
	if input.Name != nil {
		column.Name = *input.Name
	}
	s.columns[columnID] = column
	return column, nil
}

func (s *Store) DeleteColumn(_ context.Context, columnID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.columns[columnID]; !ok {
		return domainerrors.ErrColumnNotFound
	}
	s.deleteColumnCascade(columnID)
	return nil
}

func (s *Store) CreateCard(_ context.Context, columnID int64, name string, description string) (entities.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := entities.Card{ID: s.allocateID(), Name: name, Description: description, ColumnID: columnID}
	s.cards[card.ID] = card
	return card, nil
}

func (s *Store) GetCard(_ context.Context, scope ports.CardScope) (entities.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findCard(scope)
}

func (s *Store) ListCards(_ context.Context, scope ports.ColumnScope) ([]entities.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.findColumn(scope); err != nil {
		return nil, err
	}
	result := make([]entities.Card, 0)
	for _, card := range s.cards {
		if card.ColumnID == scope.ColumnID {
			result = append(result, card)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) UpdateCard(_ context.Context, cardID int64, input ports.UpdateCardInput) (entities.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[cardID]
	if !ok {
		return entities.Card{}, domainerrors.ErrCardNotFound
	}
	if input.Name != nil {
		card.Name = *input.Name
	}
	if input.Description != nil {
		card.Description = *input.Description
	}
	s.cards[cardID] = card
	return card, nil
}

func (s *Store) DeleteCard(_ context.Context, cardID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[cardID]; !ok {
		return domainerrors.ErrCardNotFound
	}
	s.deleteCardCascade(cardID)
	return nil
}

func (s *Store) CreateComment(_ context.Context, cardID int64, authorID int64, content string) (entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := entities.Comment{ID: s.allocateID(), Content: content, CardID: cardID, AuthorID: authorID}
	s.comments[comment.ID] = comment
	return comment, nil
}

func (s *Store) GetComment(_ context.Context, scope ports.CommentScope) (entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[scope.CommentID]
	if !ok || comment.CardID != scope.CardID {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	if _, err := s.findCard(ports.CardScope{UserID: scope.UserID, ColumnID: scope.ColumnID, CardID: scope.CardID}); err != nil {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	return comment, nil
}

func (s *Store) ListComments(_ context.Context, scope ports.CardScope) ([]entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.findCard(scope); err != nil {
		return nil, err
	}
	result := make([]entities.Comment, 0)
	for _, comment := range s.comments {
		if comment.CardID == scope.CardID {
			result = append(result, comment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) UpdateComment(_ context.Context, commentID int64, input ports.UpdateCommentInput) (entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[commentID]
	if !ok {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	if input.Content != nil {
		comment.Content = *input.Content
	}
	s.comments[commentID] = comment
	return comment, nil
}

func (s *Store) DeleteComment(_ context.Context, commentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[commentID]; !ok {
		return domainerrors.ErrCommentNotFound
	}
	delete(s.comments, commentID)
	return nil
}

// findColumn resolves a column through its full ancestor chain. Callers hold
// the lock.
func (s *Store) findColumn(scope ports.ColumnScope) (entities.Column, error) {
	column, ok := s.columns[scope.ColumnID]
	if !ok || column.OwnerID != scope.UserID {
		return entities.Column{}, domainerrors.ErrColumnNotFound
	}
	return column, nil
}

func (s *Store) findCard(scope ports.CardScope) (entities.Card, error) {
	card, ok := s.cards[scope.CardID]
	if !ok || card.ColumnID != scope.ColumnID {
		return entities.Card{}, domainerrors.ErrCardNotFound
	}
	if _, err := s.findColumn(ports.ColumnScope{UserID: scope.UserID, ColumnID: scope.ColumnID}); err != nil {
		return entities.Card{}, domainerrors.ErrCardNotFound
	}
	return card, nil
}

func (s *Store) deleteColumnCascade(columnID int64) {
	delete(s.columns, columnID)
	for cardID, card := range s.cards {
		if card.ColumnID == columnID {
			s.deleteCardCascade(cardID)
		}
	}
}

func (s *Store) deleteCardCascade(cardID int64) {
	delete(s.cards, cardID)
	for commentID, comment := range s.comments {
		if comment.CardID == cardID {
			delete(s.comments, commentID)
		}
	}
}
