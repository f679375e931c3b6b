package isa

import (
	"fmt"
)

// Word is a single encoded 32-bit instruction.
type Word uint32

// Field positions, counted from the least significant bit.
const (
	tagShift  = 0
	opShift   = 2
	immShift  = 16
	fieldMask = 0x7

	ualImmFlagShift = 5
	ualRdShift      = 6
	ualRs1Shift     = 9
	ualRs2Shift     = 12

	ctrlRs1Shift = 6
	ctrlRs2Shift = 9
)

// MakeUal creates a register-to-register arithmetic/logic instruction.
func MakeUal(op UalOp, rd, rs1, rs2 Register) Word {
	return Word((uint32(rs2)&fieldMask)<<ualRs2Shift |
		(uint32(rs1)&fieldMask)<<ualRs1Shift |
		(uint32(rd)&fieldMask)<<ualRdShift |
		(uint32(op)&fieldMask)<<opShift |
		uint32(CLASS_UAL)<<tagShift)
}

// MakeUalImm creates the immediate form of an arithmetic/logic instruction.
// The rs2 field is always zero.
func MakeUalImm(op UalOp, rd, rs1 Register, imm uint16) Word {
	return Word(uint32(imm)<<immShift |
		(uint32(rs1)&fieldMask)<<ualRs1Shift |
		(uint32(rd)&fieldMask)<<ualRdShift |
		1<<ualImmFlagShift |
		(uint32(op)&fieldMask)<<opShift |
		uint32(CLASS_UAL)<<tagShift)
}

// MakeCtrl creates a control flow instruction targeting a word address.
func MakeCtrl(op CtrlOp, rs1, rs2 Register, addr uint16) Word {
	return Word(uint32(addr)<<immShift |
		(uint32(rs2)&fieldMask)<<ctrlRs2Shift |
		(uint32(rs1)&fieldMask)<<ctrlRs1Shift |
		(uint32(op)&fieldMask)<<opShift |
		uint32(CLASS_CRTL)<<tagShift)
}

// Class returns the class tag of the word.
func (w Word) Class() Class {
	return Class((w >> tagShift) & 0x3)
}

// Op returns the raw three bit opcode field.
func (w Word) Op() int {
	return int((w >> opShift) & fieldMask)
}

// UalOp returns the opcode field as an arithmetic/logic operation.
func (w Word) UalOp() UalOp {
	return UalOp(w.Op())
}

// CtrlOp returns the opcode field as a control flow operation.
func (w Word) CtrlOp() CtrlOp {
	return CtrlOp(w.Op())
}

// Immediate returns true if the immediate flag of a UAL word is set.
func (w Word) Immediate() bool {
	return w.Class() == CLASS_UAL && (w>>ualImmFlagShift)&1 == 1
}

// Rd returns the destination register of a UAL word.
func (w Word) Rd() Register {
	return Register((w >> ualRdShift) & fieldMask)
}

// Rs1 returns the first source register.
func (w Word) Rs1() Register {
	if w.Class() == CLASS_CRTL {
		return Register((w >> ctrlRs1Shift) & fieldMask)
	}
	return Register((w >> ualRs1Shift) & fieldMask)
}

// Rs2 returns the second source register.
func (w Word) Rs2() Register {
	if w.Class() == CLASS_CRTL {
		return Register((w >> ctrlRs2Shift) & fieldMask)
	}
	return Register((w >> ualRs2Shift) & fieldMask)
}

// High returns the upper 16 bits: the immediate of a UAL word, or the
// target address of a CRTL word.
func (w Word) High() uint16 {
	return uint16(w >> immShift)
}

// String disassembles the word.
func (w Word) String() string {
	switch w.Class() {
	case CLASS_UAL:
		if w.Immediate() {
			return fmt.Sprintf("%v%v %v, %v, %d", w.UalOp(), ImmediateSuffix, w.Rd(), w.Rs1(), int16(w.High()))
		}
		return fmt.Sprintf("%v %v, %v, %v", w.UalOp(), w.Rd(), w.Rs1(), w.Rs2())
	case CLASS_CRTL:
		op := w.CtrlOp()
		switch {
		case op == CTRL_OP_JMP:
			return fmt.Sprintf("%v %#04x", op, w.High())
		case op <= CTRL_OP_JINF:
			return fmt.Sprintf("%v %v, %v, %#04x", op, w.Rs1(), w.Rs2(), w.High())
		}
	}

	return fmt.Sprintf(".word %#08x", uint32(w))
}
