package model

import "errors"

// Common errors used across the application
var (
	// State-presence errors
	ErrCircleDoesNotExist = errors.New("circle does not exist")
	ErrPlayerNotFound     = errors.New("player not found")

	// State-conflict errors
	ErrAlreadyCreatedCircle = errors.New("wallet has already created a circle")
	ErrAlreadyInCircle      = errors.New("wallet is already in a circle")
	ErrCircleBetrayed       = errors.New("circle has been betrayed")

	// Authorization errors
	ErrNotOwner              = errors.New("caller is not the circle creator")
	ErrCannotJoinOwnCircle   = errors.New("creator cannot join their own circle")
	ErrCannotBetrayOwnCircle = errors.New("creator cannot betray their own circle")

	// Input-validation errors
	ErrWrongPassword = errors.New("wrong password")
	ErrLongPassword  = errors.New("password exceeds maximum length")
	ErrInvalidAmount = errors.New("invalid amount")

	// External-operation errors
	ErrHarvestFailed       = errors.New("harvest failed")
	ErrTokenTransferFailed = errors.New("token transfer failed")
)
