package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-ads-board/internal/domain"
	"go-ads-board/internal/service"
	mdw "go-ads-board/internal/transport/http/middleware"
	resp "go-ads-board/internal/transport/http/response"
)

type AdHandler struct {
	ads *service.AdService
}

func NewAdHandler(ads *service.AdService) *AdHandler {
	return &AdHandler{ads: ads}
}

type createAdIn struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Create POST /ads（owner 永远取 token，不看请求体）
func (h *AdHandler) Create(c *gin.Context) {
	var in createAdIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, resp.CodeBadRequest, err.Error())
		return
	}
	a, err := h.ads.Create(c.Request.Context(), c.GetString(mdw.KeyUserID), in.Title, in.Description)
	if err != nil {
		fail(c, err)
		return
	}
	resp.JSON(c, http.StatusCreated, a)
}

// List GET /ads（公共）
func (h *AdHandler) List(c *gin.Context) {
	ads, err := h.ads.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if ads == nil {
		ads = []domain.Ad{}
	}
	resp.JSON(c, http.StatusOK, ads)
}

// Get GET /ads/:id（公共）
func (h *AdHandler) Get(c *gin.Context) {
	a, err := h.ads.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, a)
}

type updateAdIn struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Update PATCH|PUT /ads/:id，部分更新：缺省字段不动，传空串算校验错误
func (h *AdHandler) Update(c *gin.Context) {
	var in updateAdIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, resp.CodeBadRequest, err.Error())
		return
	}
	if blank(in.Title) || blank(in.Description) {
		resp.Fail(c, resp.CodeBadRequest, "title/description must be non-empty when provided")
		return
	}
	a, err := h.ads.Update(c.Request.Context(), c.GetString(mdw.KeyUserID), c.Param("id"),
		domain.AdPatch{Title: in.Title, Description: in.Description})
	if err != nil {
		fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, a)
}

// Delete DELETE /ads/:id
func (h *AdHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.ads.Delete(c.Request.Context(), c.GetString(mdw.KeyUserID), id); err != nil {
		fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, gin.H{"id": id})
}

func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}
