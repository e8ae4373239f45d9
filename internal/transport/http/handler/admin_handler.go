package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-ads-board/internal/service"
	resp "go-ads-board/internal/transport/http/response"
)

type AdminHandler struct {
	admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type listUsersQ struct {
	Offset int    `form:"offset,default=0"`
	Limit  int    `form:"limit,default=20"`
	Q      string `form:"q"` // 按 email 模糊搜
}

type userRow struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// ListUsers GET /admin/v1/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var q listUsersQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Fail(c, resp.CodeBadRequest, err.Error())
		return
	}
	users, total, err := h.admin.ListUsers(c.Request.Context(), q.Q, q.Offset, q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	items := make([]userRow, 0, len(users))
	for _, u := range users {
		items = append(items, userRow{
			ID: u.ID, Email: u.Email, Role: u.Role,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}
	resp.JSON(c, http.StatusOK, gin.H{"total": total, "items": items})
}

// BanUser POST /admin/v1/users/:id/ban
func (h *AdminHandler) BanUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.admin.BanUser(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, gin.H{"id": id})
}

// RemoveAd DELETE /admin/v1/ads/:id（运营下架，不做 owner 校验）
func (h *AdminHandler) RemoveAd(c *gin.Context) {
	id := c.Param("id")
	if err := h.admin.RemoveAd(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, gin.H{"id": id})
}
