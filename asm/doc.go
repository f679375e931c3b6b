// Package asm implements a two pass assembler producing raw memory images.
//
// The first pass assigns a word address to every label, assuming each
// non-blank, non-comment line yields one word. The second pass encodes each
// line on its own; a line that fails is reported and skipped, so labels after
// it keep the address computed by the first pass even though one fewer word
// was emitted. Program.Drift lists the labels affected.
package asm
