package io

import (
	"errors"

	"github.com/ezrec/accu8/translate"
)

var f = translate.From

var (
	// Device errors
	ErrReadOnly = errors.New(f("device read only"))
)
