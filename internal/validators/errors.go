package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidDate      = errors.New("date must be YYYY, YYYY-MM or YYYY-MM-DD")
	ErrDeathBeforeBirth = errors.New("death date is before birth date")
	ErrSelfReference    = errors.New("member cannot be its own parent or spouse")
	ErrEmptyReference   = errors.New("parent and spouse ids must not be empty")
)
