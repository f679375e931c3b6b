package asm

import (
	"errors"

	"github.com/ezrec/rawasm/translate"
)

var f = translate.From

var (
	// Fatal, detected while scanning labels.
	ErrLabelDuplicate = errors.New(f("label duplicated"))

	// Per line, the line is skipped.
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
	ErrRegisterUnknown    = errors.New(f("register unknown"))
	ErrLabelUnknown       = errors.New(f("label unknown"))
	ErrOperandsMalformed  = errors.New(f("operands malformed"))
)

// ErrToken names the source token that caused an error.
type ErrToken struct {
	Token string
	Err   error
}

func (err *ErrToken) Error() string {
	return f("'%v' %v", err.Token, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}

// ErrExpression is a $(...) expression that did not evaluate to an integer.
// It matches ErrOperandsMalformed.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not an integer expression", err.Expr)
	}
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

func (err *ErrExpression) Is(target error) bool {
	return target == ErrOperandsMalformed
}

// ErrSyntax locates an error in the source.
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
