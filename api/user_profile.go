package api

import (
	"net/http"

	"studyvault/edu-api/model"

	"github.com/gin-gonic/gin"
)

// UserProfile returns the caller's public fields. The auth middleware
// already fetched the row
func (a *API) UserProfile(c *gin.Context) {
	user := c.MustGet("user").(*model.User)

	c.JSON(http.StatusOK, user.Public())
}
