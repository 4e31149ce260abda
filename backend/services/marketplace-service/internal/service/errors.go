package service

import "errors"

var (
	// ErrChargerNotFound indicates the id is not in the current listing set.
	ErrChargerNotFound = errors.New("charger not found")
	// ErrChargerUnavailable indicates booking was attempted on a busy or offline charger.
	ErrChargerUnavailable = errors.New("charger unavailable")
	// ErrNotOrderParty indicates the caller is neither driver nor owner of the order.
	ErrNotOrderParty = errors.New("caller is not a party to the order")
	// ErrSessionNotLive indicates no live charging session exists for the order.
	ErrSessionNotLive = errors.New("no live charging session")
	// ErrOrderNotCompleted indicates a review was attempted on a non-completed order.
	ErrOrderNotCompleted = errors.New("order not completed")
	// ErrAlreadyReviewed indicates the order was reviewed before.
	ErrAlreadyReviewed = errors.New("order already reviewed")
	// ErrRatingRange indicates a rating outside 1-5.
	ErrRatingRange = errors.New("rating must be between 1 and 5")
)
