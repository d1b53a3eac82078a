package auth

import "errors"

var (
	ErrInvalidEmployeeID = errors.New("invalid employee ID")
	ErrInvalidToken      = errors.New("invalid or missing token")
)
