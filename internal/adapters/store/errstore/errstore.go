package errstore

import "errors"

var (
	ErrNotFoundData         = errors.New("data not found")
	ErrLoginNotUnique       = errors.New("login already in use")
	ErrBalanceNotEnough     = errors.New("balance not enough")
	ErrGiftCodeNotUnique    = errors.New("gift code already exists")
	ErrGiftCodeAlreadyUsed  = errors.New("gift code already used by user")
	ErrTaskAlreadyCompleted = errors.New("task already completed by user")
)
