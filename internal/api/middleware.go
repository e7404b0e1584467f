package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptline/relay/pkg/sdk"
)

// noRouteHandler returns a standard envelope for unknown routes
func noRouteHandler(c *gin.Context) {
	c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Route not found", nil).AsGinResponse())
}
