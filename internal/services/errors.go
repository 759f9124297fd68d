package services

import "errors"

var (
	ErrBoxCodeRequired = errors.New("code is required")
	ErrBoxExists       = errors.New("box code already exists")
	ErrBoxNotFound     = errors.New("box not found")
	ErrBoxNotEmpty     = errors.New("box not empty")
	ErrNameRequired    = errors.New("name is required")
	ErrUnknownBox      = errors.New("unknown box_code")
	ErrItemNotFound    = errors.New("item not found")
)
