package middleware

import (
	"net/http"
	"strings"

	pkgcontext "github.com/edaha-kurose/Buyer-matchingSystem/pkg/context"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/jwt"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization ヘッダがありません")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization の形式が不正です")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "認証情報が無効です")
			return
		}

		c.Set(pkgcontext.CtxUserID, claims.UserID)
		c.Set(pkgcontext.CtxRole, claims.Role)

		c.Next()
	}
}

// RequireRole 指定ロールのみ許可
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pkgcontext.GetRole(c) != role {
			response.Abort(c, http.StatusForbidden, "この操作を行う権限がありません")
			return
		}
		c.Next()
	}
}
