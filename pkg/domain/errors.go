package domain

import "errors"

// ErrKeyNotFound is returned by a Store when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// ErrAggregatorExists is returned when a second aggregator is bound to a wizard session.
var ErrAggregatorExists = errors.New("aggregator already exists for this session")

// ErrInvalidInput is returned when a page submission fails validation.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound is returned when a catalog entry cannot be found.
var ErrNotFound = errors.New("not found")
