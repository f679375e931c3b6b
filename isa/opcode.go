package isa

// Class is the two bit instruction class tag.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_UAL  = Class(0) // UAL
	CLASS_MEM  = Class(1) // MEM
	CLASS_CRTL = Class(3) // CRTL
)

// UalOp is an arithmetic/logic operation.
type UalOp int

//go:generate go tool stringer -linecomment -type=UalOp
const (
	UAL_OP_ADD = UalOp(0) // ADD
	UAL_OP_SUB = UalOp(1) // SUB
	UAL_OP_AND = UalOp(2) // AND
	UAL_OP_OR  = UalOp(3) // OR
	UAL_OP_XOR = UalOp(4) // XOR
	UAL_OP_SL  = UalOp(5) // SL
	UAL_OP_SR  = UalOp(6) // SR
	UAL_OP_MOD = UalOp(7) // MOD
)

// CtrlOp is a control flow operation.
type CtrlOp int

//go:generate go tool stringer -linecomment -type=CtrlOp
const (
	CTRL_OP_JMP  = CtrlOp(0) // JMP
	CTRL_OP_JEQU = CtrlOp(1) // JEQU
	CTRL_OP_JNEQ = CtrlOp(2) // JNEQ
	CTRL_OP_JSUP = CtrlOp(3) // JSUP
	CTRL_OP_JINF = CtrlOp(4) // JINF
)

// Register is a general purpose register index.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0 = Register(0) // R0
	REG_R1 = Register(1) // R1
	REG_R2 = Register(2) // R2
	REG_R3 = Register(3) // R3
	REG_R4 = Register(4) // R4
	REG_R5 = Register(5) // R5
	REG_R6 = Register(6) // R6
	REG_R7 = Register(7) // R7
)

// ImmediateSuffix marks the immediate form of a UAL mnemonic.
const ImmediateSuffix = "I"

// Table maps upper case mnemonic and register names to their codes.
// A Table is never modified after NewTable returns it.
type Table struct {
	ual      map[string]UalOp
	ctrl     map[string]CtrlOp
	register map[string]Register
}

// NewTable builds the name lookup tables for the instruction set.
func NewTable() *Table {
	table := &Table{
		ual:      make(map[string]UalOp, 8),
		ctrl:     make(map[string]CtrlOp, 5),
		register: make(map[string]Register, 8),
	}

	for op := UAL_OP_ADD; op <= UAL_OP_MOD; op++ {
		table.ual[op.String()] = op
	}
	for op := CTRL_OP_JMP; op <= CTRL_OP_JINF; op++ {
		table.ctrl[op.String()] = op
	}
	for reg := REG_R0; reg <= REG_R7; reg++ {
		table.register[reg.String()] = reg
	}

	return table
}

// Ual looks up an arithmetic/logic mnemonic, without immediate suffix.
func (table *Table) Ual(name string) (op UalOp, ok bool) {
	op, ok = table.ual[name]
	return
}

// Ctrl looks up a control flow mnemonic.
func (table *Table) Ctrl(name string) (op CtrlOp, ok bool) {
	op, ok = table.ctrl[name]
	return
}

// Register looks up a register name.
func (table *Table) Register(name string) (reg Register, ok bool) {
	reg, ok = table.register[name]
	return
}
