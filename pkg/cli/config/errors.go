package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for input file validation
var (
	ErrInvalidConfig = goerr.New("invalid configuration")
)

// Context keys for error values
const (
	InputPathKey      = "input_path"
	ViolationIndexKey = "violation_index"
)
