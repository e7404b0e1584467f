package prompt

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptline/relay/pkg/sdk"
)

// InvokeTemplate handles GET requests for the plain prompt template
func InvokeTemplate(c *gin.Context) {
	question := c.DefaultQuery("question", "ENT")
	contextText := c.DefaultQuery("context", "Claim details")

	service := GetService()
	resp, err := service.InvokeTemplate(c.Request.Context(), question, contextText)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to invoke prompt", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Prompt invoked successfully", resp).AsGinResponse())
}

// InvokeChatTemplate handles GET requests for the chat prompt template
func InvokeChatTemplate(c *gin.Context) {
	question := c.DefaultQuery("question", "What is UB?")
	contextText := c.Query("context")

	service := GetService()
	resp, err := service.InvokeChatTemplate(c.Request.Context(), question, contextText)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to invoke chat prompt", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Chat prompt invoked successfully", resp).AsGinResponse())
}

// InvokeFewShotTemplate handles GET requests for the few-shot prompt template
func InvokeFewShotTemplate(c *gin.Context) {
	question := c.DefaultQuery("question", "What is the ENT process?")
	contextText := c.DefaultQuery("context", "Insurance Domain")

	service := GetService()
	resp, err := service.InvokeFewShotTemplate(c.Request.Context(), question, contextText)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to invoke few-shot prompt", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Few-shot prompt invoked successfully", resp).AsGinResponse())
}
