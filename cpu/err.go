package cpu

import (
	"errors"

	"github.com/embervm/embervm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrSegfault   = errors.New(f("segfault"))
	ErrNotLoaded  = errors.New(f("no program loaded"))
	ErrDataTooBig = errors.New(f("data image exceeds memory"))

	// Assembler errors
	ErrConstSyntax      = errors.New(f(".const syntax"))
	ErrWordSyntax       = errors.New(f(".word syntax"))
	ErrIsrSyntax        = errors.New(f(".isr syntax"))
	ErrDirectiveUnknown = errors.New(f("unknown directive"))
	ErrSymbolDuplicate  = errors.New(f("symbol duplicated"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrLabelInvalid     = errors.New(f("label invalid"))
	ErrMnemonicInvalid  = errors.New(f("mnemonic invalid"))
	ErrCondInvalid      = errors.New(f("condition invalid"))
	ErrOperandMissing   = errors.New(f("operand missing"))
	ErrOperandExtra     = errors.New(f("excessive operands"))
	ErrOperandNotReg    = errors.New(f("operand must be a register"))
	ErrOperandAfterImm  = errors.New(f("immediate must be the final operand"))
	ErrOperandKind      = errors.New(f("operand kind invalid"))
	ErrNoMain           = errors.New(f("program has no main label"))
	ErrIsrTarget        = errors.New(f("isr target is not a label"))
	ErrIsrNoImmediate   = errors.New(f("isr stub has no immediate"))
	ErrIsrStubTooLarge  = errors.New(f("stub address too large"))
	ErrIsrStubTooFar    = errors.New(f("replacement address too far"))
)

// ErrSyntax locates an assembler error on its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("symbol %v missing", string(err))
}
