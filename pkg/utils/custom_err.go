package utils

import (
	"errors"
	"fmt"
)

var (
	ErrMissingParameter = errors.New("missing parameter")

	ErrCategoryIDRequired          = fmt.Errorf("%w: Category ID is required", ErrMissingParameter)
	ErrCategoryAndFeaturesRequired = fmt.Errorf("%w: Both category and features are required", ErrMissingParameter)

	ErrMalformedID   = errors.New("malformed identifier")
	ErrDatabaseError = errors.New("database error")
)
