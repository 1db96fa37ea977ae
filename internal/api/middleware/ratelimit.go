package middleware

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "golang.org/x/time/rate"
)

// RateLimit 进程级令牌桶限流
func RateLimit(rps float64, burst int) gin.HandlerFunc {
    limiter := rate.NewLimiter(rate.Limit(rps), burst)
    return func(c *gin.Context) {
        if !limiter.Allow() {
            c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests"})
            return
        }
        c.Next()
    }
}
