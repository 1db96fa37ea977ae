package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/desi-delights/internal/api/middleware"
    "github.com/d60-Lab/desi-delights/internal/service"
    "github.com/d60-Lab/desi-delights/pkg/response"
)

type registerRequest struct {
    Name     string `json:"name" binding:"required"`
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required,min=6"`
}

// Register 注册
// @Summary 注册
// @Tags 用户
// @Accept json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} model.User
// @Failure 409 {object} map[string]string
// @Router /api/users/register [post]
func (h *Handler) Register(c *gin.Context) {
    var req registerRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    u, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
    if err != nil {
        if errors.Is(err, service.ErrEmailTaken) {
            response.Conflict(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Created(c, u)
}

type loginRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required"`
}

// Login 登录，签发 JWT
// @Summary 登录
// @Tags 用户
// @Accept json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/users/login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    token, u, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
    if err != nil {
        if errors.Is(err, service.ErrInvalidCredentials) {
            response.Unauthorized(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"token": token, "user": u})
}

// Me 当前用户信息
// @Summary 当前用户
// @Tags 用户
// @Success 200 {object} model.User
// @Router /api/users/me [get]
func (h *Handler) Me(c *gin.Context) {
    u, err := h.auth.GetUser(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        if errors.Is(err, service.ErrUserNotFound) {
            response.NotFound(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, u)
}
