package loadprofile

import "errors"

var (
	ErrMissingColumns = errors.New("missing required columns")
	ErrEmptyProfile   = errors.New("resampling resulted in an empty profile")
	ErrZeroPeak       = errors.New("peak load is zero")
	ErrScaleFactor    = errors.New("scale factor must be between 1.0 and 2.0")
	ErrSpanTooLarge   = errors.New("readings span too many intervals")
)
