package io

import (
	"errors"

	"github.com/embervm/embervm/translate"
)

var f = translate.From

var (
	ErrConsoleOutput = errors.New(f("console output failed"))
)
