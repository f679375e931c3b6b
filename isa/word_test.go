package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	assert := assert.New(t)

	table := NewTable()

	ual := map[string]UalOp{
		"ADD": UAL_OP_ADD, "SUB": UAL_OP_SUB, "AND": UAL_OP_AND, "OR": UAL_OP_OR,
		"XOR": UAL_OP_XOR, "SL": UAL_OP_SL, "SR": UAL_OP_SR, "MOD": UAL_OP_MOD,
	}
	for name, expected := range ual {
		op, ok := table.Ual(name)
		assert.True(ok, name)
		assert.Equal(expected, op, name)
	}

	ctrl := map[string]CtrlOp{
		"JMP": CTRL_OP_JMP, "JEQU": CTRL_OP_JEQU, "JNEQ": CTRL_OP_JNEQ,
		"JSUP": CTRL_OP_JSUP, "JINF": CTRL_OP_JINF,
	}
	for name, expected := range ctrl {
		op, ok := table.Ctrl(name)
		assert.True(ok, name)
		assert.Equal(expected, op, name)
	}

	for n := range 8 {
		reg, ok := table.Register(Register(n).String())
		assert.True(ok)
		assert.Equal(Register(n), reg)
	}

	_, ok := table.Ual("ADDI")
	assert.False(ok)
	_, ok = table.Ctrl("jmp")
	assert.False(ok)
	_, ok = table.Register("R8")
	assert.False(ok)
}

func TestMakeUal(t *testing.T) {
	assert := assert.New(t)

	// ADD R0 R1 R2: rs2=010 rs1=001 rd=000 imm=0 op=000 tag=00
	w := MakeUal(UAL_OP_ADD, REG_R0, REG_R1, REG_R2)
	assert.Equal(Word(0b0_010_001_000_0_000_00), w)
	assert.Equal(CLASS_UAL, w.Class())
	assert.Equal(UAL_OP_ADD, w.UalOp())
	assert.False(w.Immediate())
	assert.Equal(REG_R0, w.Rd())
	assert.Equal(REG_R1, w.Rs1())
	assert.Equal(REG_R2, w.Rs2())
	assert.Equal(uint16(0), w.High())
	assert.Equal("ADD R0, R1, R2", w.String())

	for op := UAL_OP_ADD; op <= UAL_OP_MOD; op++ {
		w := MakeUal(op, REG_R7, REG_R7, REG_R7)
		assert.Equal(CLASS_UAL, w.Class())
		assert.Equal(op, w.UalOp())
		assert.Equal(uint32(0), uint32(w)>>15)
	}
}

func TestMakeUalImm(t *testing.T) {
	assert := assert.New(t)

	w := MakeUalImm(UAL_OP_SUB, REG_R3, REG_R4, 0xffff)
	assert.Equal(Word(0xffff_0000|0b0_000_100_011_1_001_00), w)
	assert.True(w.Immediate())
	assert.Equal(REG_R0, w.Rs2())
	assert.Equal(REG_R3, w.Rd())
	assert.Equal(REG_R4, w.Rs1())
	assert.Equal(uint16(0xffff), w.High())
	assert.Equal("SUBI R3, R4, -1", w.String())
}

func TestMakeCtrl(t *testing.T) {
	assert := assert.New(t)

	w := MakeCtrl(CTRL_OP_JMP, REG_R0, REG_R0, 0)
	assert.Equal(Word(0b11), w)
	assert.Equal("JMP 0x0000", w.String())

	// JEQU R1 R2 @5: addr=5 0000 rs2=010 rs1=001 0 op=001 tag=11
	w = MakeCtrl(CTRL_OP_JEQU, REG_R1, REG_R2, 5)
	assert.Equal(Word(5<<16|0b0000_010_001_0_001_11), w)
	assert.Equal(CLASS_CRTL, w.Class())
	assert.Equal(CTRL_OP_JEQU, w.CtrlOp())
	assert.False(w.Immediate())
	assert.Equal(REG_R1, w.Rs1())
	assert.Equal(REG_R2, w.Rs2())
	assert.Equal(uint16(5), w.High())
	assert.Equal("JEQU R1, R2, 0x0005", w.String())
}

func TestWordStringReserved(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(".word 0x00000001", Word(1).String())
	assert.Equal(".word 0x0000001f", Word(0b111_11).String())
	assert.Equal("MEM", Word(1).Class().String())
	assert.Equal("Class(2)", Class(2).String())
}
