package usecase

import "errors"

var (
	ErrInvalidURL          = errors.New("invalid url")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrVideoIDParse        = errors.New("could not parse video id")
)
