// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/ezrec/rawasm/asm"
	"github.com/ezrec/rawasm/codec"
	"github.com/ezrec/rawasm/config"
)

const rawExt = ".raw"

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			log.Printf("%v: %v", os.Args[0], err)
		}
		os.Exit(1)
	}
}

// highlight returns true if diagnostics go to a terminal.
func highlight(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	var configPath string
	var output string
	var simple bool
	var nofooter bool
	var verbose bool
	var jobs int
	var disasm bool

	flags := flag.NewFlagSet("rawasm", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&configPath, "config", "", "TOML or YAML options file")
	flags.StringVar(&output, "o", "", "Output image, '-' for stdout (single input only)")
	flags.BoolVar(&simple, "simple", false, "Disable control flow instructions and footer")
	flags.BoolVar(&nofooter, "nofooter", false, "Do not append the line count footer")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.IntVar(&jobs, "j", 0, "Files assembled at once")
	flags.BoolVar(&disasm, "d", false, "Disassemble raw images to stdout")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: rawasm [options] file.asm...\n")
		fmt.Fprintf(stderr, "       rawasm -d image.raw...\n")
		flags.PrintDefaults()
	}

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() == 0 {
		flags.Usage()
		err = errUsage
		return
	}

	if disasm {
		for _, image := range flags.Args() {
			err = disassembleFile(image, stdout)
			if err != nil {
				return
			}
		}
		return
	}

	opts := config.Default()
	if len(configPath) != 0 {
		opts, err = config.Load(configPath)
		if err != nil {
			return
		}
	}

	flags.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "simple":
			if simple {
				opts.Control = false
				opts.Footer = false
			}
		case "nofooter":
			opts.Footer = opts.Footer && !nofooter
		case "v":
			opts.Verbose = verbose
		case "j":
			opts.Jobs = max(jobs, 1)
		}
	})

	if len(output) != 0 && flags.NArg() > 1 {
		err = fmt.Errorf("-o %v: %w", output, errUsage)
		return
	}

	color := highlight(stderr)
	diag := &syncWriter{w: stderr}

	var group errgroup.Group
	group.SetLimit(max(opts.Jobs, 1))

	failed := make([]error, flags.NArg())
	for n, source := range flags.Args() {
		target := output
		if len(target) == 0 {
			target = strings.TrimSuffix(source, filepath.Ext(source)) + rawExt
		}

		group.Go(func() error {
			failed[n] = assembleFile(opts, source, target, stdout, diag, color)
			return nil
		})
	}
	_ = group.Wait()

	err = errors.Join(failed...)
	return
}

// assembleFile assembles one source file. The image is only written once
// the whole source has been processed without a fatal error.
func assembleFile(opts config.Options, source, target string, stdout io.Writer, diag io.Writer, color bool) (err error) {
	prefix := source + ": "
	if color {
		prefix = "\033[1m" + source + ":\033[0m "
	}

	assembler := asm.NewAssembler(opts)
	assembler.Log = log.New(diag, prefix, 0)

	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	image := &bytes.Buffer{}
	prog, err := assembler.Assemble(inf, image)
	if err != nil {
		if asm.Fatal(err) {
			err = fmt.Errorf("%v: %w", source, err)
		}
		return
	}

	if opts.Verbose {
		assembler.Log.Printf("%d words, %d labels, %d skipped lines", len(prog.Opcodes), prog.Labels.Len(), len(prog.Diagnostics))
	}

	if target == "-" {
		_, err = image.WriteTo(stdout)
		return
	}

	err = os.WriteFile(target, image.Bytes(), 0o644)
	return
}

// disassembleFile lists every word of a raw image with its mnemonic form.
func disassembleFile(image string, stdout io.Writer) (err error) {
	inf, err := os.Open(image)
	if err != nil {
		return
	}
	defer inf.Close()

	img, err := codec.ReadImage(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", image, err)
		return
	}

	out := bufio.NewWriter(stdout)
	fmt.Fprintf(out, "; %v\n", image)
	for ip, word := range img.Words {
		fmt.Fprintf(out, "%04x: %v  %v\n", ip, codec.Word(word), word)
	}
	if img.Footer {
		fmt.Fprintf(out, "; %d source lines\n", img.Lines)
	}

	err = out.Flush()
	return
}
