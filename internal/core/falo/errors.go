package falo

import "errors"

var (
	ErrLoginNotValid       = errors.New("login not valid")
	ErrPasswordNotValid    = errors.New("password not valid")
	ErrEmailNotValid       = errors.New("email not valid")
	ErrPasswordNotEquale   = errors.New("password not equal")
	ErrUserBanned          = errors.New("user is banned")
	ErrUserCompromised     = errors.New("user account is locked")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrRecipientNotFound   = errors.New("recipient not found")
	ErrSelfTransfer        = errors.New("transfer to self not allowed")
	ErrAmountNotValid      = errors.New("amount not valid")
	ErrCodeNotFound        = errors.New("gift code not found")
	ErrCodeExpired         = errors.New("gift code expired")
	ErrCodeAlreadyUsed     = errors.New("gift code already used")
	ErrTaskCompleted       = errors.New("task already completed")
	ErrServiceUnaffordable = errors.New("service unaffordable")
	ErrAmountBelowMinimum  = errors.New("amount below service minimum")
	ErrStatusNotAllowed    = errors.New("order status transition not allowed")
)
