package errors

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrColumnNotFound  = errors.New("column not found")
	ErrCardNotFound    = errors.New("card not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("operation not allowed")

	ErrInvalidUserInput    = errors.New("invalid user input")
	ErrInvalidColumnInput  = errors.New("invalid column input")
	ErrInvalidCardInput    = errors.New("invalid card input")
	ErrInvalidCommentInput = errors.New("invalid comment input")
)
