package models

import (
	"errors"
)

var (
	ErrNoMessages = errors.New("no messages provided")
)
