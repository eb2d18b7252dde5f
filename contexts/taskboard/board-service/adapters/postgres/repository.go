package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"taskboard/contexts/taskboard/board-service/domain/entities"
	domainerrors "taskboard/contexts/taskboard/board-service/domain/errors"
	"taskboard/contexts/taskboard/board-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository implements every repository port on Postgres. Scoped lookups
// filter by the entire ancestor chain in one query so a leaf id under the
// wrong ancestors is indistinguishable from a missing one.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the schema. Child tables carry ON DELETE CASCADE so hard
// deletes cannot strand unreachable rows.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&userModel{},
		&credentialModel{},
		&columnModel{},
		&cardModel{},
		&commentModel{},
	)
}

func (r *Repository) CreateUser(ctx context.Context, email string, passwordHash string) (entities.User, error) {
	row := userModel{Email: email}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		credential := credentialModel{
			UserID:       row.ID,
			PasswordHash: passwordHash,
			Role:         string(entities.RoleMember),
		}
		return tx.Create(&credential).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return entities.User{}, domainerrors.ErrEmailAlreadyInUse
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUser(ctx context.Context, userID int64) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]entities.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateUser(ctx context.Context, userID int64, input ports.UpdateUserInput) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.Email != nil {
			result := tx.Model(&userModel{}).
				Where("id = ?", userID).
				Update("email", *input.Email)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerrors.ErrUserNotFound
			}
		}
		if input.PasswordHash != nil {
			result := tx.Model(&credentialModel{}).
				Where("user_id = ?", userID).
				Update("password_hash", *input.PasswordHash)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerrors.ErrUserNotFound
			}
		}
		if err := tx.Where("id = ?", userID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrUserNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return entities.User{}, domainerrors.ErrEmailAlreadyInUse
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&userModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) GetRequestor(ctx context.Context, userID int64) (entities.Requestor, error) {
	var row requestorRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.email, credentials.role").
		Joins("JOIN credentials ON credentials.user_id = users.id").
		Where("users.id = ?", userID).
		Take(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Requestor{}, domainerrors.ErrUserNotFound
		}
		return entities.Requestor{}, err
	}
	return entities.Requestor{ID: row.ID, Email: row.Email, Role: entities.Role(row.Role)}, nil
}

func (r *Repository) GetCredentialByEmail(ctx context.Context, email string) (entities.User, entities.Credential, error) {
	var row credentialRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.email, credentials.password_hash, credentials.role").
		Joins("JOIN credentials ON credentials.user_id = users.id").
		Where("users.email = ?", email).
		Take(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, entities.Credential{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, entities.Credential{}, err
	}
	user := entities.User{ID: row.ID, Email: row.Email}
	credential := entities.Credential{
		UserID:       row.ID,
		PasswordHash: row.PasswordHash,
		Role:         entities.Role(row.Role),
	}
	return user, credential, nil
}

func (r *Repository) CreateColumn(ctx context.Context, ownerID int64, name string) (entities.Column, error) {
	row := columnModel{Name: name, OwnerID: ownerID}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Column{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetColumn(ctx context.Context, scope ports.ColumnScope) (entities.Column, error) {
	var row columnModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", scope.ColumnID, scope.UserID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Column{}, domainerrors.ErrColumnNotFound
		}
		return entities.Column{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListColumns(ctx context.Context, ownerID int64) ([]entities.Column, error) {
	var rows []columnModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Column, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateColumn(ctx context.Context, columnID int64, input ports.UpdateColumnInput) (entities.Column, error) {
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&columnModel{}).
			Where("id = ?", columnID).
			Updates(updates)
		if result.Error != nil {
			return entities.Column{}, result.Error
		}
		if result.RowsAffected == 0 {
			return entities.Column{}, domainerrors.ErrColumnNotFound
		}
	}
	var row columnModel
	err := r.db.WithContext(ctx).Where("id = ?", columnID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Column{}, domainerrors.ErrColumnNotFound
		}
		return entities.Column{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteColumn(ctx context.Context, columnID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", columnID).Delete(&columnModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrColumnNotFound
	}
	return nil
}

func (r *Repository) CreateCard(ctx context.Context, columnID int64, name string, description string) (entities.Card, error) {
	row := cardModel{Name: name, Description: description, ColumnID: columnID}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Card{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetCard(ctx context.Context, scope ports.CardScope) (entities.Card, error) {
	var row cardModel
	err := r.db.WithContext(ctx).
		Model(&cardModel{}).
		Select("cards.*").
		Joins("JOIN columns ON columns.id = cards.column_id").
		Where("cards.id = ? AND cards.column_id = ? AND columns.owner_id = ?",
			scope.CardID, scope.ColumnID, scope.UserID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Card{}, domainerrors.ErrCardNotFound
		}
		return entities.Card{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCards(ctx context.Context, scope ports.ColumnScope) ([]entities.Card, error) {
	if _, err := r.GetColumn(ctx, scope); err != nil {
		return nil, err
	}
	var rows []cardModel
	err := r.db.WithContext(ctx).
		Where("column_id = ?", scope.ColumnID).
		Order("id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Card, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateCard(ctx context.Context, cardID int64, input ports.UpdateCardInput) (entities.Card, error) {
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&cardModel{}).
			Where("id = ?", cardID).
			Updates(updates)
		if result.Error != nil {
			return entities.Card{}, result.Error
		}
		if result.RowsAffected == 0 {
			return entities.Card{}, domainerrors.ErrCardNotFound
		}
	}
	var row cardModel
	err := r.db.WithContext(ctx).Where("id = ?", cardID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Card{}, domainerrors.ErrCardNotFound
		}
		return entities.Card{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteCard(ctx context.Context, cardID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", cardID).Delete(&cardModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCardNotFound
	}
	return nil
}

func (r *Repository) CreateComment(ctx context.Context, cardID int64, authorID int64, content string) (entities.Comment, error) {
	row := commentModel{Content: content, CardID: cardID, AuthorID: authorID}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Comment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetComment(ctx context.Context, scope ports.CommentScope) (entities.Comment, error) {
	var row commentModel
	err := r.db.WithContext(ctx).
		Model(&commentModel{}).
		Select("comments.*").
		Joins("JOIN cards ON cards.id = comments.card_id").
		Joins("JOIN columns ON columns.id = cards.column_id").
		Where("comments.id = ? AND comments.card_id = ? AND cards.column_id = ? AND columns.owner_id = ?",
			scope.CommentID, scope.CardID, scope.ColumnID, scope.UserID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comment{}, domainerrors.ErrCommentNotFound
		}
		return entities.Comment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListComments(ctx context.Context, scope ports.CardScope) ([]entities.Comment, error) {
	if _, err := r.GetCard(ctx, scope); err != nil {
		return nil, err
	}
	var rows []commentModel
	err := r.db.WithContext(ctx).
		Where("card_id = ?", scope.CardID).
		Order("id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Comment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateComment(ctx context.Context, commentID int64, input ports.UpdateCommentInput) (entities.Comment, error) {
	if input.Content != nil {
		result := r.db.WithContext(ctx).
			Model(&commentModel{}).
			Where("id = ?", commentID).
			Update("content", *input.Content)
		if result.Error != nil {
			return entities.Comment{}, result.Error
		}
		if result.RowsAffected == 0 {
			return entities.Comment{}, domainerrors.ErrCommentNotFound
		}
	}
	var row commentModel
	err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comment{}, domainerrors.ErrCommentNotFound
		}
		return entities.Comment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&commentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCommentNotFound
	}
	return nil
}

type userModel struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Email string `gorm:"column:email;uniqueIndex;not null"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toEntity() entities.User {
	return entities.User{ID: m.ID, Email: m.Email}
}

type credentialModel struct {
	UserID       int64     `gorm:"column:user_id;primaryKey"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null;default:member"`
	User         userModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (credentialModel) TableName() string { return "credentials" }

type columnModel struct {
	ID      int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name    string    `gorm:"column:name;not null"`
	OwnerID int64     `gorm:"column:owner_id;not null;index"`
	Owner   userModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

func (columnModel) TableName() string { return "columns" }

func (m columnModel) toEntity() entities.Column {
	return entities.Column{ID: m.ID, Name: m.Name, OwnerID: m.OwnerID}
}

type cardModel struct {
	ID          int64       `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string      `gorm:"column:name;not null"`
	Description string      `gorm:"column:description"`
	ColumnID    int64       `gorm:"column:column_id;not null;index"`
	Column      columnModel `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE"`
}

func (cardModel) TableName() string { return "cards" }

func (m cardModel) toEntity() entities.Card {
	return entities.Card{ID: m.ID, Name: m.Name, Description: m.Description, ColumnID: m.ColumnID}
}

type commentModel struct {
	ID       int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Content  string    `gorm:"column:content;not null"`
	CardID   int64     `gorm:"column:card_id;not null;index"`
	AuthorID int64     `gorm:"column:author_id;not null;index"`
	Card     cardModel `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Author   userModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (commentModel) TableName() string { return "comments" }

func (m commentModel) toEntity() entities.Comment {
	return entities.Comment{ID: m.ID, Content: m.Content, CardID: m.CardID, AuthorID: m.AuthorID}
}

type requestorRow struct {
	ID    int64
	Email string
	Role  string
}

type credentialRow struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
