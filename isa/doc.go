// Package isa describes the 32-bit instruction set targeted by rawasm.
//
// Every instruction occupies exactly one 32-bit word. The two low bits of a
// word are the class tag, which selects one of two field layouts:
//
//	UAL:  imm(16) 0(1) rs2(3) rs1(3) rd(3) immflag(1) op(3) tag(2)=00
//	CRTL: addr(16) 0(4) rs2(3) rs1(3) 0(1) op(3) tag(2)=11
//
// The MEM class tag (01) is reserved; no mnemonic produces it.
package isa
