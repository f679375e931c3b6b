package asm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rawasm/isa"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Words: []string{"ADD", "R0", "R1", "R2"},
				Word: isa.MakeUal(isa.UAL_OP_ADD, isa.REG_R0, isa.REG_R1, isa.REG_R2)},
			{LineNo: 3, Ip: 1, Words: []string{"JMP", "start"},
				Word: isa.MakeCtrl(isa.CTRL_OP_JMP, isa.REG_R0, isa.REG_R0, 0)},
		},
	}

	op := prog.Debug(1)
	assert.NotNil(op)
	assert.Equal(3, op.LineNo)

	assert.Nil(prog.Debug(2))
	assert.Nil(prog.Debug(-1))
}

func TestProgram_WriteTo(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Word: 0xdeadbeef},
			{LineNo: 2, Ip: 1, Word: 0x1},
		},
		Lines:  2,
		Footer: true,
	}

	out := &bytes.Buffer{}
	n, err := prog.WriteTo(out)
	assert.NoError(err)
	assert.Equal("v2.0 raw\nDEADBEEF\n00000001\n00020003", out.String())
	assert.Equal(int64(out.Len()), n)

	prog.Footer = false
	out.Reset()
	_, err = prog.WriteTo(out)
	assert.NoError(err)
	assert.Equal("v2.0 raw\nDEADBEEF\n00000001\n", out.String())
}

type failWriter struct{}

var errFail = errors.New("write failed")

func (failWriter) Write(data []byte) (int, error) {
	return 0, errFail
}

func TestProgram_WriteToErr(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Opcodes: []Opcode{{LineNo: 1, Word: 1}}}

	n, err := prog.WriteTo(failWriter{})
	assert.ErrorIs(err, errFail)
	assert.Equal(int64(0), n)
}

func TestProgram_WordsBreak(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{{Ip: 0, Word: 1}, {Ip: 1, Word: 2}, {Ip: 2, Word: 3}},
	}

	var seen []isa.Word
	for ip, word := range prog.Words() {
		seen = append(seen, word)
		if ip == 1 {
			break
		}
	}
	assert.Equal([]isa.Word{1, 2}, seen)
}
