package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for input validation. All are fatal: they are returned
// before any partial computation proceeds.
var (
	ErrInvalidRevenue       = goerr.New("annual revenue must be positive")
	ErrRiskFactorRange      = goerr.New("risk factor outside [0,1]")
	ErrUnknownViolationType = goerr.New("unknown violation type")
	ErrInvalidHorizon       = goerr.New("analysis horizon must be at least one year")
	ErrTerminalRate         = goerr.New("discount rate must exceed terminal growth rate")
	ErrEmptyCashFlows       = goerr.New("cash flow series is empty")
)
