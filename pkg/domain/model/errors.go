package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	// ErrLoad is returned when a source does not have the expected indicator layout
	ErrLoad = goerr.New("failed to load indicator table")
	// ErrLookup is returned when an entity, indicator or year is absent from a table
	ErrLookup = goerr.New("lookup failed")
	// ErrDegenerateInput is returned when correlation inputs cannot produce a matrix
	ErrDegenerateInput = goerr.New("degenerate input")
	ErrTableNotFound   = goerr.New("table not found")
)
