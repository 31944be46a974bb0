package service

import "errors"

// Sentinel errors let the HTTP layer pick status codes and messages
// without string matching. ErrNotFound and ErrNotOwner are kept
// distinct even though the wire protocol currently maps both owner
// failures to 401.
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrInvalidDate        = errors.New("invalid date")
	ErrNotFound           = errors.New("not found")
	ErrNotOwner           = errors.New("not authorized")
)
