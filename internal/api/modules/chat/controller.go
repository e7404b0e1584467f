package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptline/relay/internal/stores/conversation"
	"github.com/promptline/relay/pkg/sdk"
)

// CreateSession handles POST requests to mint a new session
func CreateSession(c *gin.Context) {
	service := GetService()
	info := service.NewSession()

	c.JSON(sdk.NewSuccessResponse("Session created successfully", toSDKSession(info)).AsGinResponse())
}

// PostCompletion handles POST requests to run a stateful completion
func PostCompletion(c *gin.Context) {
	// Parse request body
	var req sdk.CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	service := GetService()
	resp, err := service.Complete(c.Request.Context(), req)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to complete message", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Message completed successfully", resp).AsGinResponse())
}

// ListSessions handles GET requests to enumerate stored sessions
func ListSessions(c *gin.Context) {
	service := GetService()

	infos := service.Store().Sessions()
	sessions := make([]sdk.Session, 0, len(infos))
	for _, info := range infos {
		sessions = append(sessions, toSDKSession(info))
	}

	c.JSON(sdk.NewSuccessResponse("Sessions retrieved successfully", sessions).AsGinResponse())
}

// GetSession handles GET requests to retrieve a session transcript.
// Lookups never create sessions as a side effect
func GetSession(c *gin.Context) {
	sessionID := c.Param("id")

	service := GetService()
	transcript, exists := service.Store().Get(sessionID)
	if !exists {
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Session not found", nil).AsGinResponse())
		return
	}

	resp := sdk.SessionTranscript{
		SessionID: sessionID,
		CreatedAt: transcript.CreatedAt(),
		UpdatedAt: transcript.UpdatedAt(),
		Messages:  transcript.Messages(),
	}

	c.JSON(sdk.NewSuccessResponse("Session retrieved successfully", resp).AsGinResponse())
}

// DeleteSession handles DELETE requests to evict a session
func DeleteSession(c *gin.Context) {
	sessionID := c.Param("id")

	service := GetService()
	if !service.Store().Evict(sessionID) {
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Session not found", nil).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccess("Session deleted successfully").AsGinResponse())
}

// Helper method to convert store session info to sdk session
func toSDKSession(info conversation.SessionInfo) sdk.Session {
	return sdk.Session{
		SessionID:    info.SessionID,
		MessageCount: info.MessageCount,
		CreatedAt:    info.CreatedAt,
		UpdatedAt:    info.UpdatedAt,
	}
}
