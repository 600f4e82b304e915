package handlers

import (
	"github.com/gin-gonic/gin"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/interfaces/http/middleware"
	"glg-capital.backend/internal/interfaces/http/response"
)

// currentUser returns the authenticated user id, writing a 401 when absent.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return "", false
	}
	return userID, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return false
	}
	return true
}
