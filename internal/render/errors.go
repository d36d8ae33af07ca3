package render

import "errors"

var (
	ErrVideoInit          = errors.New("render: failed to initialize video subsystem")
	ErrWindowCreate       = errors.New("render: failed to create window")
	ErrRendererCreate     = errors.New("render: failed to create renderer")
	ErrAlreadyInitialized = errors.New("render: context already initialized")
	ErrNotInitialized     = errors.New("render: context not initialized")
	ErrClosed             = errors.New("render: context closed")
	ErrInvalidTargetFPS   = errors.New("render: target fps must be positive")
)
