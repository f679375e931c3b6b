// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"iter"

	"github.com/ezrec/rawasm/codec"
	"github.com/ezrec/rawasm/isa"
)

// Header is the first line of a raw memory image.
const Header = codec.ImageHeader

// Opcode is an encoded source line.
type Opcode struct {
	LineNo int      // Source line number.
	Ip     int      // Index of the word in the emitted image.
	Words  []string // Instruction tokens.
	Word   isa.Word // Encoded instruction.
}

// Program is the result of an assembly run.
type Program struct {
	Opcodes     []Opcode     // Encoded lines, in source order.
	Labels      LabelTable   // Labels found by the label scan.
	Diagnostics []*ErrSyntax // Lines that were skipped.
	Lines       int          // Number of source lines seen.
	Footer      bool         // If set, the image ends with the line count record.
}

// Words iterates over the emitted words and their image index.
func (prog *Program) Words() iter.Seq2[int, isa.Word] {
	return func(yield func(ip int, word isa.Word) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Word) {
				return
			}
		}
	}
}

// Debug returns the opcode emitted at image index ip, or nil.
func (prog *Program) Debug(ip int) *Opcode {
	if ip < 0 || ip >= len(prog.Opcodes) {
		return nil
	}
	return &prog.Opcodes[ip]
}

// Drift returns the labels whose scanned address differs from the index of
// the word that follows them in the emitted image. This happens when a line
// before the label failed to encode: the label scan counted it as a word.
func (prog *Program) Drift() (names []string) {
	for _, name := range prog.Labels.Names() {
		label, _ := prog.Labels.Lookup(name)
		actual := 0
		for _, op := range prog.Opcodes {
			if op.LineNo >= label.LineNo {
				break
			}
			actual++
		}
		if actual != label.Ip {
			names = append(names, name)
		}
	}

	return
}

// WriteTo writes the program as a raw memory image.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	out := &countWriter{w: w}
	bw := bufio.NewWriter(out)

	defer func() {
		n = out.n
	}()

	_, err = bw.WriteString(Header + "\n")
	if err != nil {
		return
	}

	for _, word := range prog.Words() {
		_, err = bw.WriteString(codec.Word(word) + "\n")
		if err != nil {
			return
		}
	}

	if prog.Footer {
		_, err = bw.WriteString(codec.Footer(prog.Lines))
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(data []byte) (n int, err error) {
	n, err = cw.w.Write(data)
	cw.n += int64(n)
	return
}
