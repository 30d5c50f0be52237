package model

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("entity not found")
	ErrDuplicateID  = errors.New("duplicate id")
	ErrNoBudget     = errors.New("no budget configured")
	ErrOverdraft    = errors.New("budget overdraft")
)
