// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"math"

	"github.com/ezrec/rawasm/config"
	"github.com/ezrec/rawasm/isa"
)

// Assembler is a two pass assembler producing raw memory images.
type Assembler struct {
	Options config.Options // Variant selection.
	Log     *log.Logger    // Destination of diagnostics. log.Default() if nil.

	table *isa.Table
}

// NewAssembler creates an assembler for the given variant.
func NewAssembler(opts config.Options) *Assembler {
	return &Assembler{
		Options: opts,
		table:   isa.NewTable(),
	}
}

func (asm *Assembler) logger() *log.Logger {
	if asm.Log == nil {
		return log.Default()
	}
	return asm.Log
}

// Parse assembles the input into a Program. A duplicated label is fatal and
// returns an error. Lines that fail to encode are recorded in the program
// diagnostics, logged, and skipped.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	if asm.table == nil {
		asm.table = isa.NewTable()
	}

	var lines []string
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	labels, err := ScanLabels(lines)
	if err != nil {
		return
	}

	enc := &Encoder{
		Table:   asm.table,
		Labels:  labels,
		Control: asm.Options.Control,
	}

	prog = &Program{
		Labels: labels,
		Lines:  len(lines),
		Footer: asm.Options.Footer,
	}

	logger := asm.logger()
	for n, text := range lines {
		lineno := n + 1

		if asm.Options.Verbose {
			logger.Printf("%v: %v\n", lineno, text)
		}

		result := enc.EncodeLine(text)
		switch result.Kind {
		case RESULT_WORD:
			op := Opcode{LineNo: lineno, Ip: len(prog.Opcodes), Words: result.Words, Word: result.Word}
			prog.Opcodes = append(prog.Opcodes, op)
			if asm.Options.Verbose {
				logger.Printf("%v: [%04x] %08X %v\n", lineno, op.Ip, uint32(op.Word), op.Word)
			}
		case RESULT_FAILED:
			diag := &ErrSyntax{LineNo: lineno, Line: text, Err: result.Err}
			prog.Diagnostics = append(prog.Diagnostics, diag)
			logger.Print(diag)
		}
	}

	for _, name := range prog.Drift() {
		label, _ := labels.Lookup(name)
		logger.Printf("label %v: address %d is shifted by skipped lines\n", name, label.Ip)
	}

	return
}

// Assemble parses the input and writes the raw memory image to output.
// Nothing is written if the label scan fails.
func (asm *Assembler) Assemble(input io.Reader, output io.Writer) (prog *Program, err error) {
	prog, err = asm.Parse(input)
	if err != nil {
		return
	}

	_, err = prog.WriteTo(output)
	return
}

// Fatal returns true if err aborted the whole run.
func Fatal(err error) bool {
	return errors.Is(err, ErrLabelDuplicate)
}
