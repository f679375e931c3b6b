package asm

import (
	"math/big"
	"strings"

	"github.com/ezrec/rawasm/isa"
)

// ResultKind classifies the outcome of encoding one line.
type ResultKind int

const (
	RESULT_EMPTY  = ResultKind(iota) // Blank, comment, or label only.
	RESULT_WORD                      // One instruction word.
	RESULT_FAILED                    // The line could not be encoded.
)

// Result is the outcome of encoding one source line.
type Result struct {
	Kind  ResultKind
	Word  isa.Word
	Words []string // Tokens of the instruction, after expansion.
	Err   error
}

// Encoder translates single source lines into instruction words.
type Encoder struct {
	Table   *isa.Table // Mnemonic and register names.
	Labels  LabelTable // Completed label table.
	Control bool       // If set, control flow mnemonics are recognized.
}

// EncodeLine encodes one line of source text.
func (enc *Encoder) EncodeLine(text string) (result Result) {
	line := splitLine(text)
	if len(line.Body) == 0 {
		return
	}

	body, err := expandExprs(line.Body, enc.Labels)
	if err != nil {
		result.Kind = RESULT_FAILED
		result.Err = err
		return
	}

	words := fields(body)
	result.Words = words
	if len(words) == 0 {
		result.Kind = RESULT_FAILED
		result.Err = &ErrToken{Token: body, Err: ErrOperandsMalformed}
		return
	}

	word, err := enc.encodeWords(words)
	if err != nil {
		result.Kind = RESULT_FAILED
		result.Err = err
		return
	}

	result.Kind = RESULT_WORD
	result.Word = word
	return
}

// encodeWords encodes a tokenized instruction.
func (enc *Encoder) encodeWords(words []string) (word isa.Word, err error) {
	mnemonic := strings.ToUpper(words[0])

	if enc.Control {
		op, ok := enc.Table.Ctrl(mnemonic)
		if ok {
			return enc.encodeCtrl(op, words)
		}
	}

	name, immediate := mnemonic, false
	op, ok := enc.Table.Ual(name)
	if !ok && strings.HasSuffix(name, isa.ImmediateSuffix) {
		name, immediate = strings.TrimSuffix(name, isa.ImmediateSuffix), true
		op, ok = enc.Table.Ual(name)
	}
	if !ok {
		err = &ErrToken{Token: words[0], Err: ErrInstructionUnknown}
		return
	}

	return enc.encodeUal(op, immediate, words)
}

// encodeCtrl encodes JMP label, or Jcc rs1 rs2 label.
func (enc *Encoder) encodeCtrl(op isa.CtrlOp, words []string) (word isa.Word, err error) {
	rs1, rs2 := isa.REG_R0, isa.REG_R0
	var target string

	if op == isa.CTRL_OP_JMP {
		if len(words) < 2 {
			err = &ErrToken{Token: words[0], Err: ErrOperandsMalformed}
			return
		}
		target = words[1]
	} else {
		if len(words) < 4 {
			err = &ErrToken{Token: words[0], Err: ErrOperandsMalformed}
			return
		}
		rs1, err = enc.register(words[1])
		if err != nil {
			return
		}
		rs2, err = enc.register(words[2])
		if err != nil {
			return
		}
		target = words[3]
	}

	label, ok := enc.Labels.Lookup(target)
	if !ok {
		err = &ErrToken{Token: target, Err: ErrLabelUnknown}
		return
	}

	word = isa.MakeCtrl(op, rs1, rs2, uint16(label.Ip))
	return
}

// encodeUal encodes OP rd rs1 rs2, or OPI rd rs1 constant.
func (enc *Encoder) encodeUal(op isa.UalOp, immediate bool, words []string) (word isa.Word, err error) {
	if len(words) < 4 {
		err = &ErrToken{Token: words[0], Err: ErrOperandsMalformed}
		return
	}

	rd, err := enc.register(words[1])
	if err != nil {
		return
	}
	rs1, err := enc.register(words[2])
	if err != nil {
		return
	}

	if immediate {
		var imm uint16
		imm, err = constant16(words[3])
		if err != nil {
			return
		}
		word = isa.MakeUalImm(op, rd, rs1, imm)
		return
	}

	rs2, err := enc.register(words[3])
	if err != nil {
		return
	}

	word = isa.MakeUal(op, rd, rs1, rs2)
	return
}

// register looks up a register name, case insensitively.
func (enc *Encoder) register(token string) (reg isa.Register, err error) {
	reg, ok := enc.Table.Register(strings.ToUpper(token))
	if !ok {
		err = &ErrToken{Token: token, Err: ErrRegisterUnknown}
	}
	return
}

var wordModulus = big.NewInt(1 << 16)

// constant16 parses an integer of any size and wraps it to 16 bits of two's
// complement. Numbers are decimal unless they carry a 0x, 0o or 0b prefix.
func constant16(token string) (imm uint16, err error) {
	digits := strings.TrimLeft(token, "+-")
	base := 10
	if len(digits) > 1 && digits[0] == '0' && strings.ContainsRune("xXoObB", rune(digits[1])) {
		base = 0
	}

	value, ok := new(big.Int).SetString(token, base)
	if !ok {
		err = &ErrToken{Token: token, Err: ErrOperandsMalformed}
		return
	}

	imm = uint16(value.Mod(value, wordModulus).Uint64())
	return
}
