package httptransport

// UserDTO is the public user view; role and credentials are never exposed.
type UserDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is a partial update: omitted fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type CreateTokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTokenResponse struct {
	Token string `json:"token"`
}

type ColumnDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}

type CreateColumnRequest struct {
	Name string `json:"name"`
}

type UpdateColumnRequest struct {
	Name *string `json:"name,omitempty"`
}

type CardDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ColumnID    int64  `json:"columnId"`
}

type CreateCardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCardRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CommentDTO struct {
	ID       int64  `json:"id"`
	Content  string `json:"content"`
	CardID   int64  `json:"cardId"`
	AuthorID int64  `json:"authorId"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
