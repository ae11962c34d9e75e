package controller

import "errors"

var (
	ErrInvalidConfig              = errors.New("invalid player config")
	ErrMissingEntity              = errors.New("player has no entity")
	ErrMissingCamera              = errors.New("player has no camera capability")
	ErrMissingInput               = errors.New("player has no input capability")
	ErrMissingCharacterController = errors.New("player has no character controller capability")
	ErrMissingWorldQuery          = errors.New("player has no world query capability")
)
