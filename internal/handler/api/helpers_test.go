//go:build unit

package api_test

import (
	"marketplace-api/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// asUser stands in for the auth middleware when a test sends "Bearer <any>".
func asUser(id uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", id)
			c.Set("user_role", role)
		}
		c.Next()
	}
}
