package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnknownAsset = errors.New("unknown asset")
)
