package middleware

import (
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/desi-delights/internal/service"
    "github.com/d60-Lab/desi-delights/pkg/response"
)

// gin context 键
const (
    CtxUserID = "auth.user_id"
    CtxRole   = "auth.role"
)

func bearerToken(c *gin.Context) string {
    h := c.GetHeader("Authorization")
    if !strings.HasPrefix(h, "Bearer ") {
        return ""
    }
    return strings.TrimPrefix(h, "Bearer ")
}

// Authenticated 强制鉴权：无有效 token 返回 401
func Authenticated(auth *service.AuthService) gin.HandlerFunc {
    return func(c *gin.Context) {
        token := bearerToken(c)
        if token == "" {
            response.Unauthorized(c, "missing bearer token")
            return
        }
        claims, err := auth.Parse(token)
        if err != nil {
            response.Unauthorized(c, "invalid token")
            return
        }
        c.Set(CtxUserID, claims.UserID)
        c.Set(CtxRole, claims.Role)
        c.Next()
    }
}

// OptionalAuth 游客可过；带合法 token 时注入身份（游客结算用）
func OptionalAuth(auth *service.AuthService) gin.HandlerFunc {
    return func(c *gin.Context) {
        if token := bearerToken(c); token != "" {
            if claims, err := auth.Parse(token); err == nil {
                c.Set(CtxUserID, claims.UserID)
                c.Set(CtxRole, claims.Role)
            }
        }
        c.Next()
    }
}

// RequireRole 角色门禁，需在 Authenticated 之后
func RequireRole(roles ...string) gin.HandlerFunc {
    return func(c *gin.Context) {
        role := c.GetString(CtxRole)
        for _, r := range roles {
            if role == r {
                c.Next()
                return
            }
        }
        response.Forbidden(c, "insufficient role")
    }
}

// UserID 读取当前用户ID；未登录返回 0
func UserID(c *gin.Context) int64 {
    if v, ok := c.Get(CtxUserID); ok {
        if id, ok := v.(int64); ok {
            return id
        }
    }
    return 0
}
