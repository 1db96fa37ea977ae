package response

import (
    "net/http"

    "github.com/gin-gonic/gin"
)

// Success 200，直接返回资源本体
func Success(c *gin.Context, data interface{}) {
    c.JSON(http.StatusOK, data)
}

// Created 201
func Created(c *gin.Context, data interface{}) {
    c.JSON(http.StatusCreated, data)
}

// BadRequest 400
func BadRequest(c *gin.Context, msg string) {
    c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msg})
}

// Unauthorized 401
func Unauthorized(c *gin.Context, msg string) {
    c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
}

// Forbidden 403
func Forbidden(c *gin.Context, msg string) {
    c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msg})
}

// NotFound 404
func NotFound(c *gin.Context, msg string) {
    c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": msg})
}

// Conflict 409
func Conflict(c *gin.Context, msg string) {
    c.AbortWithStatusJSON(http.StatusConflict, gin.H{"message": msg})
}

// InternalError 500
func InternalError(c *gin.Context, err error) {
    c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
