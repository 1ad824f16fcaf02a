package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"user-vault/internal/pkg/jwt"
	"user-vault/pkg/constants"
	"user-vault/pkg/responses"
)

// AuthMiddleware JWT认证中间件，把已认证的 (uid, org_id) 写入 context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			responses.ErrorWithCode(c, responses.CodeUnauthorized, "缺少Authorization Header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			responses.ErrorWithCode(c, responses.CodeUnauthorized, "Authorization格式错误")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix)

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			responses.Error(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUID, claims.UID)
		c.Set(constants.ContextKeyOrgID, claims.OrgID)
		c.Set(constants.ContextKeyUsername, claims.Username)

		c.Next()
	}
}
