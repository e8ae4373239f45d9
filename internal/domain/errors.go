package domain

import "errors"

// 业务错误（transport 层映射为 HTTP 状态码）
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("not the owner")
)
