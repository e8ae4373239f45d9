package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-ads-board/internal/domain"
	resp "go-ads-board/internal/transport/http/response"
)

// fail 业务错误统一映射为 HTTP 状态码
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		resp.Fail(c, resp.CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		resp.Fail(c, resp.CodeForbidden, err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		resp.Fail(c, resp.CodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		resp.Fail(c, resp.CodeUnauthorized, err.Error())
	default:
		resp.Fail(c, resp.CodeServerError, "internal error")
	}
}
