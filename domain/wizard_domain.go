package domain

import "errors"

var (
	ErrWrongStep           = errors.New("action is not available on the current step")
	ErrStepIncomplete      = errors.New("current step is incomplete")
	ErrCategoryNotAccepted = errors.New("category is not accepted by this ngo")
	ErrTooManyImages       = errors.New("an item can carry at most 5 images")
	ErrPastPickupDate      = errors.New("pickup date cannot be in the past")
	ErrEmptyAddress        = errors.New("pickup address cannot be empty")
)
