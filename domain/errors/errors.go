package errors

import "errors"

var (
	ErrConfiguration      = errors.New("configuration error")
	ErrSourceUnavailable  = errors.New("source unavailable")
	ErrDataFormat         = errors.New("invalid data format")
	ErrMissingColumn      = errors.New("missing column")
	ErrEmptyResult        = errors.New("empty result")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrInvalidStationData = errors.New("invalid station data")
)
