package codec

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/rawasm/isa"
)

// ImageHeader is the first line of a raw memory image.
const ImageHeader = "v2.0 raw"

var (
	ErrHeader = errors.New(f("not a v2.0 raw image"))
	ErrFooter = errors.New(f("footer malformed"))
)

// ErrImageLine locates a malformed line in a raw image.
type ErrImageLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrImageLine) Error() string {
	return f("image line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrImageLine) Unwrap() error {
	return err.Err
}

// Image is the content of a raw memory image.
type Image struct {
	Words  []isa.Word
	Footer bool // If set, Lines holds the footer line count.
	Lines  int
}

// ReadImage reads a raw memory image. A last line with no line terminator
// is the footer record.
func ReadImage(input io.Reader) (img *Image, err error) {
	reader := bufio.NewReader(input)

	header, err := reader.ReadString('\n')
	if strings.TrimRight(header, "\r\n") != ImageHeader {
		err = ErrHeader
		return
	}
	if err != nil {
		// Header only, no words and no footer.
		if errors.Is(err, io.EOF) {
			err = nil
			img = &Image{}
		}
		return
	}

	img = &Image{}
	lineno := 1
	for {
		var line string
		line, err = reader.ReadString('\n')
		lineno++

		last := errors.Is(err, io.EOF)
		if err != nil && !last {
			img = nil
			return
		}

		text := strings.TrimRight(line, "\r\n")
		switch {
		case len(text) == 0:
		case last:
			err = img.parseFooter(text)
		default:
			var w isa.Word
			w, err = ParseWord(text)
			if err == nil {
				img.Words = append(img.Words, w)
			}
		}

		if err != nil && !errors.Is(err, io.EOF) {
			err = &ErrImageLine{LineNo: lineno, Line: text, Err: err}
			img = nil
			return
		}

		if last {
			err = nil
			return
		}
	}
}

// parseFooter decodes the line count record.
func (img *Image) parseFooter(text string) (err error) {
	if len(text) != HexDigits || !strings.HasSuffix(text, FooterSuffix) {
		err = ErrFooter
		return
	}

	lines, err := strconv.ParseUint(text[:4], 16, 16)
	if err != nil {
		err = ErrFooter
		return
	}

	img.Footer = true
	img.Lines = int(lines)
	return
}
