package emulator

import (
	"github.com/embervm/embervm/cpu"
	"github.com/embervm/embervm/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime trap.
type ErrRuntime struct {
	LineNo int
	Status cpu.Status
}

func (err *ErrRuntime) Error() string {
	return f("line %d trap '%v'", err.LineNo, err.Status)
}
