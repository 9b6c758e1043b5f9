package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lamdh/gradeview/internal/dto"
	"github.com/lamdh/gradeview/internal/model"
	"github.com/lamdh/gradeview/internal/session"
)

// RequireRole gates a route group to one of the two roles. The
// backend still enforces authorization on its side; this keeps the
// dashboard from even offering another role's routes.
func RequireRole(sess *session.Store, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, found := sess.User()
		if !found || !sess.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		switch user.Role {
		case model.RoleTeacher, model.RoleStudent:
			if user.Role != role {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient permissions"})
				return
			}
		default:
			// A session can only be established with a validated role,
			// but an exhaustive switch keeps a third value from ever
			// passing.
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Unknown role"})
			return
		}
		c.Next()
	}
}
