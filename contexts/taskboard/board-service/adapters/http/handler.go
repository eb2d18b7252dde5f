package httpadapter

import (
	"context"
	"log/slog"

	"taskboard/contexts/taskboard/board-service/application"
	"taskboard/contexts/taskboard/board-service/domain/entities"
	"taskboard/contexts/taskboard/board-service/ports"
	httptransport "taskboard/contexts/taskboard/board-service/transport/http"
)

// Handler maps transport DTOs onto the application service. The requestor is
// resolved once at the HTTP boundary and passed explicitly into every call.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ResolveRequestorHandler(ctx context.Context, rawToken string) (entities.Requestor, error) {
	return h.Service.ResolveRequestor(ctx, rawToken)
}

func (h Handler) CreateTokenHandler(ctx context.Context, req httptransport.CreateTokenRequest) (httptransport.CreateTokenResponse, error) {
	token, err := h.Service.IssueToken(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.CreateTokenResponse{}, err
	}
	return httptransport.CreateTokenResponse{Token: token}, nil
}

func (h Handler) CreateUserHandler(ctx context.Context, req httptransport.CreateUserRequest) (httptransport.UserDTO, error) {
	user, err := h.Service.CreateUser(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

func (h Handler) GetUserHandler(ctx context.Context, userID int64) (httptransport.UserDTO, error) {
	user, err := h.Service.GetUser(ctx, userID)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

func (h Handler) ListUsersHandler(ctx context.Context) ([]httptransport.UserDTO, error) {
	users, err := h.Service.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]httptransport.UserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, mapUser(user))
	}
	return result, nil
}

func (h Handler) UpdateUserHandler(
	ctx context.Context,
	requestor entities.Requestor,
	userID int64,
	req httptransport.UpdateUserRequest,
) (httptransport.UserDTO, error) {
	user, err := h.Service.UpdateUser(ctx, requestor, userID, req.Email, req.Password)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

func (h Handler) DeleteUserHandler(ctx context.Context, requestor entities.Requestor, userID int64) error {
	return h.Service.DeleteUser(ctx, requestor, userID)
}

func (h Handler) CreateColumnHandler(
	ctx context.Context,
	requestor entities.Requestor,
	userID int64,
	req httptransport.CreateColumnRequest,
) (httptransport.ColumnDTO, error) {
	column, err := h.Service.CreateColumn(ctx, requestor, userID, req.Name)
	if err != nil {
		return httptransport.ColumnDTO{}, err
	}
	return mapColumn(column), nil
}

func (h Handler) GetColumnHandler(ctx context.Context, scope ports.ColumnScope) (httptransport.ColumnDTO, error) {
	column, err := h.Service.GetColumn(ctx, scope)
	if err != nil {
		return httptransport.ColumnDTO{}, err
	}
	return mapColumn(column), nil
}

func (h Handler) ListColumnsHandler(ctx context.Context, userID int64) ([]httptransport.ColumnDTO, error) {
	columns, err := h.Service.ListColumns(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]httptransport.ColumnDTO, 0, len(columns))
	for _, column := range columns {
		result = append(result, mapColumn(column))
	}
	return result, nil
}

func (h Handler) UpdateColumnHandler(
	ctx context.Context,
	requestor entities.Requestor,
	scope ports.ColumnScope,
	req httptransport.UpdateColumnRequest,
) (httptransport.ColumnDTO, error) {
	column, err := h.Service.UpdateColumn(ctx, requestor, scope, ports.UpdateColumnInput{Name: req.Name})
	if err != nil {
		return httptransport.ColumnDTO{}, err
	}
	return mapColumn(column), nil
}

func (h Handler) DeleteColumnHandler(ctx context.Context, requestor entities.Requestor, scope ports.ColumnScope) error {
	return h.Service.DeleteColumn(ctx, requestor, scope)
}

func (h Handler) CreateCardHandler(
	ctx context.Context,
	requestor entities.Requestor,
	scope ports.ColumnScope,
	req httptransport.CreateCardRequest,
) (httptransport.CardDTO, error) {
	card, err := h.Service.CreateCard(ctx, requestor, scope, req.Name, req.Description)
	if err != nil {
		return httptransport.CardDTO{}, err
	}
	return mapCard(card), nil
}

func (h Handler) GetCardHandler(ctx context.Context, scope ports.CardScope) (httptransport.CardDTO, error) {
	card, err := h.Service.GetCard(ctx, scope)
	if err != nil {
		return httptransport.CardDTO{}, err
	}
	return mapCard(card), nil
}

func (h Handler) ListCardsHandler(ctx context.Context, scope ports.ColumnScope) ([]httptransport.CardDTO, error) {
	cards, err := h.Service.ListCards(ctx, scope)
	if err != nil {
		return nil, err
	}
	result := make([]httptransport.CardDTO, 0, len(cards))
	for _, card := range cards {
		result = append(result, mapCard(card))
	}
	return result, nil
}

func (h Handler) UpdateCardHandler(
	ctx context.Context,
	requestor entities.Requestor,
	scope ports.CardScope,
	req httptransport.UpdateCardRequest,
) (httptransport.CardDTO, error) {
	card, err := h.Service.UpdateCard(ctx, requestor, scope, ports.UpdateCardInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return httptransport.CardDTO{}, err
	}
	return mapCard(card), nil
}

func (h Handler) DeleteCardHandler(ctx context.Context, requestor entities.Requestor, scope ports.CardScope) error {
	return h.Service.DeleteCard(ctx, requestor, scope)
}

func (h Handler) CreateCommentHandler(
	ctx context.Context,
	requestor entities.Requestor,
	scope ports.CardScope,
	req httptransport.CreateCommentRequest,
) (httptransport.CommentDTO, error) {
	comment, err := h.Service.CreateComment(ctx, requestor, scope, req.Content)
	if err != nil {
		return httptransport.CommentDTO{}, err
	}
	return mapComment(comment), nil
}

func (h Handler) GetCommentHandler(ctx context.Context, scope ports.CommentScope) (httptransport.CommentDTO, error) {
	comment, err := h.Service.GetComment(ctx, scope)
	if err != nil {
		return httptransport.CommentDTO{}, err
	}
	return mapComment(comment), nil
}

func (h Handler) ListCommentsHandler(ctx context.Context, scope ports.CardScope) ([]httptransport.CommentDTO, error) {
	comments, err := h.Service.ListComments(ctx, scope)
	if err != nil {
		return nil, err
	}
	result := make([]httptransport.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		result = append(result, mapComment(comment))
	}
	return result, nil
}

func (h Handler) UpdateCommentHandler(
	ctx context.Context,
	requestor entities.Requestor,
	scope ports.CommentScope,
	req httptransport.UpdateCommentRequest,
) (httptransport.CommentDTO, error) {
	comment, err := h.Service.UpdateComment(ctx, requestor, scope, ports.UpdateCommentInput{Content: req.Content})
	if err != nil {
		return httptransport.CommentDTO{}, err
	}
	return mapComment(comment), nil
}

func (h Handler) DeleteCommentHandler(ctx context.Context, requestor entities.Requestor, scope ports.CommentScope) error {
	return h.Service.DeleteComment(ctx, requestor, scope)
}

func mapUser(user entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{ID: user.ID, Email: user.Email}
}

func mapColumn(column entities.Column) httptransport.ColumnDTO {
	return httptransport.ColumnDTO{ID: column.ID, Name: column.Name, OwnerID: column.OwnerID}
}

func mapCard(card entities.Card) httptransport.CardDTO {
	return httptransport.CardDTO{
		ID:          card.ID,
		Name:        card.Name,
		Description: card.Description,
		ColumnID:    card.ColumnID,
	}
}

func mapComment(comment entities.Comment) httptransport.CommentDTO {
	return httptransport.CommentDTO{
		ID:       comment.ID,
		Content:  comment.Content,
		CardID:   comment.CardID,
		AuthorID: comment.AuthorID,
	}
}
