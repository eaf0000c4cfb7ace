package game

import "errors"

var (
	// ErrWindowCreation means GLFW could not create the window.
	ErrWindowCreation = errors.New("window creation failed")
	// ErrBackendInit means the GL context or bindings could not be set up.
	ErrBackendInit = errors.New("render backend init failed")
)
