package user_module

import (
	"context"
	"fmt"
	"log"

	user_store "github.com/promptline/relay/internal/stores/user"
	"github.com/promptline/relay/pkg/sdk"
	"github.com/promptline/relay/pkg/utils"
)

// UserService runs validated user operations against the store
type UserService struct {
	store     user_store.Store
	validator *Validator
}

var userService *UserService

// Init creates the user service. A MySQL store is used when MYSQL_URL is
// configured; otherwise users are held in process memory
func Init(cfg *utils.Config) error {
	var store user_store.Store

	if databaseURL := cfg.Get("MYSQL_URL"); databaseURL != "" {
		mysqlStore, err := user_store.NewMySqlStore(databaseURL)
		if err != nil {
			return fmt.Errorf("failed to create user store: %w", err)
		}
		store = mysqlStore
	} else {
		log.Println("[USER]: MYSQL_URL not set, using in-memory user store")
		store = user_store.NewInMemoryStore()
	}

	InitWithStore(store)
	return nil
}

// InitWithStore creates the user service with a caller-provided store
func InitWithStore(store user_store.Store) {
	userService = &UserService{
		store:     store,
		validator: NewValidator(),
	}
}

// GetService returns the active user service
func GetService() *UserService {
	return userService
}

// CreateUser validates and stores a new user
func (s *UserService) CreateUser(ctx context.Context, req *sdk.CreateUserRequest) (sdk.User, error) {
	item, err := s.validator.ValidateRequest(req)
	if err != nil {
		return sdk.User{}, err
	}

	entity := user_store.ItemToEntity(item)
	if err := s.store.CreateUser(ctx, entity); err != nil {
		return sdk.User{}, err
	}

	return toSDKUser(user_store.EntityToItem(entity)), nil
}

// GetUser retrieves a user by external id
func (s *UserService) GetUser(ctx context.Context, userID int64) (sdk.User, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return sdk.User{}, err
	}

	entity, err := s.store.GetUserByUserID(ctx, userID)
	if err != nil {
		return sdk.User{}, err
	}

	return toSDKUser(user_store.EntityToItem(entity)), nil
}

// ListUsers retrieves all stored users
func (s *UserService) ListUsers(ctx context.Context) ([]sdk.User, error) {
	entities, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]sdk.User, 0, len(entities))
	for _, entity := range entities {
		users = append(users, toSDKUser(user_store.EntityToItem(entity)))
	}

	return users, nil
}

// UpdateUser validates and updates an existing user
func (s *UserService) UpdateUser(ctx context.Context, req *sdk.CreateUserRequest) (sdk.User, error) {
	item, err := s.validator.ValidateRequest(req)
	if err != nil {
		return sdk.User{}, err
	}

	entity := user_store.ItemToEntity(item)
	if err := s.store.UpdateUser(ctx, entity); err != nil {
		return sdk.User{}, err
	}

	return toSDKUser(user_store.EntityToItem(entity)), nil
}

// UpsertUser validates and creates-or-updates a user
func (s *UserService) UpsertUser(ctx context.Context, req *sdk.CreateUserRequest) (sdk.User, error) {
	item, err := s.validator.ValidateRequest(req)
	if err != nil {
		return sdk.User{}, err
	}

	entity := user_store.ItemToEntity(item)
	if err := s.store.UpsertUser(ctx, entity); err != nil {
		return sdk.User{}, err
	}

	return toSDKUser(user_store.EntityToItem(entity)), nil
}

// DeleteUser deletes a user by external id
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return err
	}

	return s.store.DeleteUser(ctx, userID)
}

// Helper method to convert a store item to an sdk user
func toSDKUser(item user_store.Item) sdk.User {
	return sdk.User{
		ID:        item.ID,
		UserID:    item.UserID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
