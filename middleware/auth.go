package middleware

import (
	"net/http"
	"strings"

	"seecooker/pkg/context"
	"seecooker/pkg/jwt"
	"seecooker/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 登录校验，解析 Bearer token 并注入用户ID
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c, secret)
		if !ok {
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 可选登录校验
// 菜谱列表、详情等接口对未登录用户开放；带有效 token 时注入用户ID，
// 否则放行，收藏状态按未登录处理
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}
		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			c.Next()
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

func parseAuthHeader(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
		return nil, false
	}

	claims, err := jwt.ParseToken(secret, "access", parts[1])
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, err.Error())
		return nil, false
	}
	return claims, true
}
