package user_module

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	user_store "github.com/promptline/relay/internal/stores/user"
	"github.com/promptline/relay/pkg/sdk"
)

// CreateUser handles POST requests to create a new user
func CreateUser(c *gin.Context) {
	// Parse request body
	var req sdk.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	service := GetService()
	user, err := service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(statusForError(err), "Failed to create user", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("User created successfully", user).AsGinResponse())
}

// GetUser handles GET requests to retrieve a user by external id
func GetUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid user id", err).AsGinResponse())
		return
	}

	service := GetService()
	user, err := service.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(statusForError(err), "Failed to get user", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("User retrieved successfully", user).AsGinResponse())
}

// ListUsers handles GET requests to retrieve all users
func ListUsers(c *gin.Context) {
	service := GetService()
	users, err := service.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to list users", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Users retrieved successfully", users).AsGinResponse())
}

// UpdateUser handles PUT requests to update an existing user
func UpdateUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid user id", err).AsGinResponse())
		return
	}

	// Parse request body; the path parameter wins over the body id
	var req sdk.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}
	req.UserID = userID

	service := GetService()
	user, err := service.UpdateUser(c.Request.Context(), &req)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(statusForError(err), "Failed to update user", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("User updated successfully", user).AsGinResponse())
}

// UpsertUser handles POST requests to create or update a user
func UpsertUser(c *gin.Context) {
	// Parse request body
	var req sdk.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	service := GetService()
	user, err := service.UpsertUser(c.Request.Context(), &req)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(statusForError(err), "Failed to upsert user", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("User upserted successfully", user).AsGinResponse())
}

// DeleteUser handles DELETE requests to remove a user by external id
func DeleteUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid user id", err).AsGinResponse())
		return
	}

	service := GetService()
	if err := service.DeleteUser(c.Request.Context(), userID); err != nil {
		c.JSON(sdk.NewErrorResponse(statusForError(err), "Failed to delete user", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccess("User deleted successfully").AsGinResponse())
}

// parseUserID reads the user id path parameter
func parseUserID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("user_id"), 10, 64)
}

// statusForError maps store and validation errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, user_store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, user_store.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
