package core

import "errors"

// Sentinel errors returned by view and table validation.
var (
	ErrEmptyView      = errors.New("view has no sections")
	ErrUnnamedSection = errors.New("section name is empty")
	ErrInvalidBlock   = errors.New("invalid block")
	ErrInvalidTable   = errors.New("invalid table")
)
