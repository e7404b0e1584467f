package user_module

import (
	"errors"
	"fmt"

	user_store "github.com/promptline/relay/internal/stores/user"
	"github.com/promptline/relay/pkg/sdk"
)

// ErrInvalidRequest marks validation failures so controllers can map
// them to 400 responses
var ErrInvalidRequest = errors.New("invalid user request")

// Maximum user name length, matches the column size
const maxNameLength = 50

// Validator performs domain validation of user requests before they
// reach the repository
type Validator struct{}

// NewValidator creates a new user request validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRequest checks a user request and maps it to a storable item
func (v *Validator) ValidateRequest(req *sdk.CreateUserRequest) (user_store.Item, error) {
	if req == nil {
		return user_store.Item{}, fmt.Errorf("missing request body: %w", ErrInvalidRequest)
	}

	if req.UserID <= 0 {
		return user_store.Item{}, fmt.Errorf("user id %d must be positive: %w", req.UserID, ErrInvalidRequest)
	}

	if len(req.Name) > maxNameLength {
		return user_store.Item{}, fmt.Errorf("user name exceeds %d characters: %w", maxNameLength, ErrInvalidRequest)
	}

	return user_store.Item{
		UserID: req.UserID,
		Name:   req.Name,
	}, nil
}

// ValidateUserID checks a bare user id
func (v *Validator) ValidateUserID(userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("user id %d must be positive: %w", userID, ErrInvalidRequest)
	}
	return nil
}
