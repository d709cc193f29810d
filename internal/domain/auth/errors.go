package auth

import "errors"

var (
	ErrInvalidPIN             = errors.New("invalid admin PIN")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
