package quotation

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrMissingFields = fmt.Errorf("%w: missing fields", ErrValidation)
	ErrNotFound      = errors.New("quotation not found")
	ErrDuplicateKey  = errors.New("quotation number already exists")
	ErrRender        = errors.New("render quotation")
)
