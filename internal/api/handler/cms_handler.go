package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/pkg/response"
)

// GetPage 内容页
// @Summary 内容页
// @Tags 内容
// @Param slug path string true "页面标识"
// @Success 200 {object} model.Page
// @Failure 404 {object} map[string]string
// @Router /api/pages/{slug} [get]
func (h *Handler) GetPage(c *gin.Context) {
    p, err := h.cms.GetPage(c.Request.Context(), c.Param("slug"))
    if err != nil {
        response.NotFound(c, "page not found")
        return
    }
    response.Success(c, p)
}

type pageBody struct {
    Title string `json:"title" binding:"required"`
    Body  string `json:"body" binding:"required"`
}

// UpsertPage 管理端更新内容页
// @Summary 更新内容页
// @Tags 内容
// @Param slug path string true "页面标识"
// @Param request body pageBody true "页面内容"
// @Success 200 {object} model.Page
// @Router /api/pages/{slug} [put]
func (h *Handler) UpsertPage(c *gin.Context) {
    var req pageBody
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    p := &model.Page{Slug: c.Param("slug"), Title: req.Title, Body: req.Body}
    if err := h.cms.UpsertPage(c.Request.Context(), p); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, p)
}
