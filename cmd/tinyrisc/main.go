// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/tinyrisc/asm"
	"github.com/ezrec/tinyrisc/object"
)

// options are the command line settings of one invocation.
type options struct {
	Input   string // .asm source.
	Text    string // .mc output.
	Binary  string // .bin output, if any.
	Verbose bool
	Defines map[string]int64
}

// mcName returns the default .mc output name for a source file.
func mcName(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".mc"
}

// createWith creates a file and fills it with write.
func createWith(name string, write func(w io.Writer) error) (err error) {
	ouf, err := os.Create(name)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	return write(ouf)
}

// assemble assembles opts.Input, reporting diagnostics to diag. It returns
// the number of diagnostics.
func assemble(opts options, diag io.Writer) (count int, err error) {
	inf, err := os.Open(opts.Input)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: opts.Verbose}
	for name, value := range opts.Defines {
		assembler.Predefine(name, value)
	}

	prog, err := assembler.Parse(inf)
	if err != nil {
		return
	}

	if opts.Verbose {
		pp.Fprintln(diag, prog.Label)
	}

	errs := prog.Errors()
	for _, perr := range errs {
		fmt.Fprintf(diag, "%v: %v\n", opts.Input, perr)
	}
	count = len(errs)

	words := prog.Binary()

	err = createWith(opts.Text, func(w io.Writer) error {
		return object.WriteText(w, slices.Values(words))
	})
	if err != nil {
		return
	}

	if len(opts.Binary) != 0 {
		if count != 0 {
			fmt.Fprintf(diag, "%v: %v diagnostics, not writing\n", opts.Binary, count)
			return
		}
		err = createWith(opts.Binary, func(w io.Writer) error {
			return object.WriteBinary(w, slices.Values(words))
		})
	}

	return
}

// disassemble lists a .bin file.
func disassemble(input string, out io.Writer) (err error) {
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	words, err := object.ReadBinary(inf)
	for n, word := range words {
		fmt.Fprintf(out, "%04d: %v %v\n", n, word, word.Disassemble())
	}

	return
}

// define parses a NAME=VALUE predefine.
func define(defines map[string]int64, def string) (err error) {
	name, text, ok := strings.Cut(def, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("-D %v: expected NAME=VALUE", def)
	}

	value, err := asm.ParseInteger(text)
	if err != nil {
		return
	}

	defines[name] = value
	return
}

func main() {
	var disasm string
	opts := options{Defines: map[string]int64{}}

	flag.StringVar(&opts.Text, "o", "", ".mc file to write (default: source name with .mc)")
	flag.StringVar(&opts.Binary, "b", "", ".bin file to write")
	flag.StringVar(&disasm, "d", "", ".bin file to disassemble")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine NAME=VALUE for $(...) expressions", func(def string) error {
		return define(opts.Defines, def)
	})

	flag.Parse()

	if len(disasm) != 0 {
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}
		err := disassemble(disasm, os.Stdout)
		if err != nil {
			log.Fatalf("%v: %v", disasm, err)
		}
		return
	}

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected one .asm file, got: %v", os.Args[0], flag.Args())
	}

	opts.Input = flag.Arg(0)
	if len(opts.Text) == 0 {
		opts.Text = mcName(opts.Input)
	}

	count, err := assemble(opts, os.Stderr)
	if err != nil {
		log.Fatalf("%v: %v", opts.Input, err)
	}
	if count != 0 {
		os.Exit(1)
	}
}
