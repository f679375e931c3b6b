// Package codec converts instruction words to and from the digit strings
// used by the raw memory image format.
package codec

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/ezrec/rawasm/isa"
	"github.com/ezrec/rawasm/translate"
)

var f = translate.From

var (
	ErrDigit = errors.New(f("not a binary digit"))
	ErrWidth = errors.New(f("bit width out of range"))
)

// FooterSuffix terminates the line count record of a raw image.
const FooterSuffix = "0003"

// HexDigits is the minimum width of a hexadecimal word.
const HexDigits = 8

// Bits returns value as a width-character string of '0' and '1', most
// significant bit first. Negative values are encoded in two's complement,
// and values that do not fit wrap modulo 2^width.
func Bits(value int64, width int) string {
	if width <= 0 {
		return ""
	}

	var buf strings.Builder
	buf.Grow(width)

	// Bits above 63 replicate the sign.
	for bitpos := width - 1; bitpos >= 0; bitpos-- {
		shift := min(bitpos, 63)
		if (value>>shift)&1 == 1 {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}

	return buf.String()
}

// Hex converts a big-endian string of binary digits to upper case
// hexadecimal, zero padded to at least HexDigits digits.
func Hex(bits string) (hex string, err error) {
	for _, ch := range bits {
		if ch != '0' && ch != '1' {
			err = ErrDigit
			return
		}
	}

	value := new(big.Int)
	if len(bits) > 0 {
		value.SetString(bits, 2)
	}

	hex = strings.ToUpper(value.Text(16))
	if len(hex) < HexDigits {
		hex = strings.Repeat("0", HexDigits-len(hex)) + hex
	}

	return
}

// Word returns the 8 digit upper case hexadecimal form of an instruction.
func Word(w isa.Word) string {
	hex := strings.ToUpper(strconv.FormatUint(uint64(w), 16))
	return strings.Repeat("0", HexDigits-len(hex)) + hex
}

// Footer returns the trailing record of a raw image: the number of source
// lines seen, as 4 hex digits of its 16-bit two's complement, followed by
// FooterSuffix.
func Footer(lines int) string {
	hex, _ := Hex(Bits(int64(lines), 16))
	return hex[len(hex)-4:] + FooterSuffix
}

// ParseWord parses an 8 digit hexadecimal word.
func ParseWord(hex string) (w isa.Word, err error) {
	if len(hex) != HexDigits {
		err = ErrWidth
		return
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return
	}
	w = isa.Word(value)
	return
}
