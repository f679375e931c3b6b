// Package config holds the assembler variant options and loads them from
// TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/rawasm/translate"
)

var f = translate.From

var (
	ErrFormat     = errors.New(f("unknown configuration format"))
	ErrKeyUnknown = errors.New(f("unknown configuration key"))
)

// ErrLoad indicates which configuration file failed to load.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("config %v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// Options selects the assembler variant.
type Options struct {
	Control bool `toml:"control" yaml:"control"` // Enables the JMP/JEQU/JNEQ/JSUP/JINF class.
	Footer  bool `toml:"footer" yaml:"footer"`   // Appends the line count record to the image.
	Verbose bool `toml:"verbose" yaml:"verbose"` // Logs every line and its encoding.
	Jobs    int  `toml:"jobs" yaml:"jobs"`       // Maximum number of files assembled at once.
}

// Default returns the label-aware variant.
func Default() Options {
	return Options{
		Control: true,
		Footer:  true,
		Jobs:    4,
	}
}

// Simple returns the variant without control flow or footer.
func Simple() Options {
	opts := Default()
	opts.Control = false
	opts.Footer = false
	return opts
}

// Decode reads options over the defaults. Format is "toml" or "yaml".
func Decode(data []byte, format string) (opts Options, err error) {
	opts = Default()

	switch format {
	case "toml":
		var md toml.MetaData
		md, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&opts)
		if err == nil && len(md.Undecoded()) != 0 {
			err = fmt.Errorf("%v: %w", md.Undecoded(), ErrKeyUnknown)
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&opts)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		err = ErrFormat
	}

	if opts.Jobs < 1 {
		opts.Jobs = 1
	}

	return
}

// Load reads options from a file, choosing the format by extension.
func Load(path string) (opts Options, err error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = "toml"
	case ".yaml", ".yml":
		format = "yaml"
	default:
		err = &ErrLoad{Path: path, Err: ErrFormat}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}

	opts, err = Decode(data, format)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}

	return
}
