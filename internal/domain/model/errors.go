package model

import "errors"

var (
	// ErrInvalidConfiguration is returned when a component is built without a required collaborator.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidArgument is returned when a message is absent or empty.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownChannel is returned for a channel kind that is not registered.
	ErrUnknownChannel = errors.New("unknown channel")
)
