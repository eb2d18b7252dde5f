package entities

// Role is the access level stored on a user's credential record.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Field bounds enforced on write paths.
const (
	ColumnNameMaxLength      = 32
	CardNameMaxLength        = 32
	CardDescriptionMaxLength = 255
	CommentContentMaxLength  = 255
	PasswordMinLength        = 8
)

// User is the public view of an account. The password hash and role live on
// the linked credential record and never leave the repository layer.
type User struct {
	ID    int64
	Email string
}

// Credential is the internal record linked 1:1 to a user.
type Credential struct {
	UserID       int64
	PasswordHash string
	Role         Role
}

// Requestor is the authenticated caller: resolved from storage once per
// request, never trusted from the token payload beyond the user id.
type Requestor struct {
	ID    int64
	Email string
	Role  Role
}

func (r Requestor) IsAdmin() bool {
	return r.Role == RoleAdmin
}

// ToUser strips the role for public responses.
func (r Requestor) ToUser() User {
	return User{ID: r.ID, Email: r.Email}
}

type Column struct {
	ID      int64
	Name    string
	OwnerID int64
}

type Card struct {
	ID          int64
	Name        string
	Description string
	ColumnID    int64
}

type Comment struct {
	ID       int64
	Content  string
	CardID   int64
	AuthorID int64
}
