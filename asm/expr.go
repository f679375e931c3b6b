package asm

import (
	"math/big"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var exprPattern = regexp.MustCompile(`\$\([^\$]*\)`)

// evalExpr evaluates a compile-time $(...) expression. Labels are visible
// as integers holding their word address. The value is not range limited;
// operands wrap it where they are encoded.
func evalExpr(expr string, labels LabelTable) (value *big.Int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := make(starlark.StringDict, labels.Len())
	for name, label := range labels.label {
		pred[name] = starlark.MakeInt(label.Ip)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr}
		return
	}
	value = st_int.BigInt()
	return
}

// expandExprs replaces every $(...) in text with its decimal value.
func expandExprs(text string, labels LabelTable) (expanded string, err error) {
	expanded = exprPattern.ReplaceAllStringFunc(text, func(str string) string {
		if err != nil {
			return str
		}
		value, _err := evalExpr(str[2:len(str)-1], labels)
		if _err != nil {
			err = _err
			return str
		}
		return value.String()
	})

	return
}
