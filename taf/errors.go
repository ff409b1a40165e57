package taf

import "errors"

// Structural and range errors. Lexical errors come from package tarock
// (tarock.ErrUnknownCard, tarock.ErrUnknownContract). Every error returned by
// Parse wraps exactly one of these; test with errors.Is.
var (
	ErrMissingGroups        = errors.New("missing groups")
	ErrInvalidCardsGroup    = errors.New("invalid cards group")
	ErrInvalidContractGroup = errors.New("invalid contract group")
	ErrInvalidCallsGroup    = errors.New("invalid calls group")
	ErrInvalidCall          = errors.New("invalid call")
	ErrInvalidFlag          = errors.New("invalid flag")
	ErrInvalidPlayerIndex   = errors.New("invalid player index")
)
