package errors

import "errors"

// ErrFileNotFound is returned when a file is not found.
var ErrFileNotFound = errors.New("file not found")

// ErrIncorrectInput is returned when the user input is incorrect.
var ErrIncorrectInput = errors.New("incorrect input")

// ErrInterfaceNotFound is returned when a requested interface name is not
// present in the parsed configuration.
var ErrInterfaceNotFound = errors.New("interface not found")

// ErrMalformedConfig is returned when a configuration document does not have
// the expected netplan shape.
var ErrMalformedConfig = errors.New("malformed config")
