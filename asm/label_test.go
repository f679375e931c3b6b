package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanLabels(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"# header comment",
		"start: ADD R0 R1 R2",
		"",
		"loop:",
		"   SUB R1 R1 R2   ",
		"JNEQ R1 R0 loop # back: again",
		"end:",
		"next: JMP start",
	}

	lt, err := ScanLabels(program)
	assert.NoError(err)
	assert.Equal(map[string]int{"start": 0, "loop": 1, "end": 3, "next": 3}, lt.Addresses())
	assert.Equal([]string{"end", "loop", "next", "start"}, lt.Names())
	assert.Equal(4, lt.Len())

	label, ok := lt.Lookup("loop")
	assert.True(ok)
	assert.Equal(Label{LineNo: 4, Ip: 1}, label)

	_, ok = lt.Lookup("back")
	assert.False(ok)
}

func TestScanLabelsEmpty(t *testing.T) {
	assert := assert.New(t)

	lt, err := ScanLabels(nil)
	assert.NoError(err)
	assert.Equal(0, lt.Len())
	assert.Empty(lt.Names())
}

func TestScanLabelsDuplicate(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		prog  []string
		label string
		line  int
	}{
		{[]string{"DUP:", "DUP:"}, "DUP", 2},
		{[]string{"a: ADD R0 R0 R0", "ADD R0 R0 R0", "a: SUB R0 R0 R0"}, "a", 3},
		{[]string{"x:", "# x:", "  x : JMP x"}, "x", 3},
	}

	for _, entry := range table {
		_, err := ScanLabels(entry.prog)
		assert.ErrorIs(err, ErrLabelDuplicate, entry.prog)

		var se *ErrSyntax
		if assert.True(errors.As(err, &se), entry.prog) {
			assert.Equal(entry.line, se.LineNo, entry.prog)
			assert.Equal(entry.prog[entry.line-1], se.Line)
		}

		var te *ErrToken
		if assert.True(errors.As(err, &te), entry.prog) {
			assert.Equal(entry.label, te.Token)
		}
	}
}
