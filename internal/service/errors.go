package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNoSecurityQuestion = errors.New("no security question on file")
	ErrWrongAnswer        = errors.New("wrong security answer")
	ErrRecoverySequence   = errors.New("recovery step out of sequence")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password is too short")
)
