package user

import (
	"context"
	"errors"
	"fmt"

	go_mysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Sentinel errors callers can test with errors.Is
var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("user already exists")
)

// Store interface defines methods for user storage
type Store interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByUserID(ctx context.Context, userID int64) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, user *User) error
	UpsertUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, userID int64) error
}

// MySQL duplicate key error number
const mysqlDuplicateEntry = 1062

// MySqlStore handles user persistence using GORM
type MySqlStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new user store with GORM connection
func NewMySqlStore(databaseURL string) (*MySqlStore, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &MySqlStore{db: db}

	// Auto-migrate tables
	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// CreateUser creates a new user in the database
func (s *MySqlStore) CreateUser(ctx context.Context, user *User) error {
	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return fmt.Errorf("user id %d: %w", user.UserID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", result.Error)
	}

	return nil
}

// GetUserByUserID retrieves a user by its external user id
func (s *MySqlStore) GetUserByUserID(ctx context.Context, userID int64) (*User, error) {
	var user User
	result := s.db.WithContext(ctx).First(&user, "user_id = ?", userID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user id %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", result.Error)
	}

	return &user, nil
}

// ListUsers retrieves all users
func (s *MySqlStore) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	result := s.db.WithContext(ctx).Order("user_id ASC").Find(&users)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to list users: %w", result.Error)
	}

	return users, nil
}

// UpdateUser updates an existing user's fields
func (s *MySqlStore) UpdateUser(ctx context.Context, user *User) error {
	result := s.db.WithContext(ctx).Model(&User{}).
		Where("user_id = ?", user.UserID).
		Update("name", user.Name)

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user id %d: %w", user.UserID, ErrNotFound)
	}

	// Re-read the row so callers see the stored timestamps
	if err := s.db.WithContext(ctx).First(user, "user_id = ?", user.UserID).Error; err != nil {
		return fmt.Errorf("failed to reload user: %w", err)
	}

	return nil
}

// UpsertUser updates a user by external id, creating it if absent
func (s *MySqlStore) UpsertUser(ctx context.Context, user *User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing User
		err := tx.First(&existing, "user_id = ?", user.UserID).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		existing.Name = user.Name
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		*user = existing
		return nil
	})
}

// DeleteUser deletes a user by external id
func (s *MySqlStore) DeleteUser(ctx context.Context, userID int64) error {
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&User{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user id %d: %w", userID, ErrNotFound)
	}

	return nil
}

// Close closes the database connection
func (s *MySqlStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}

// isDuplicateEntry reports whether an error is a MySQL duplicate key error
func isDuplicateEntry(err error) bool {
	var mysqlErr *go_mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
