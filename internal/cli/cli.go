// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Vertridge/Chip8Emulator/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	readOutputFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "" && opts.Input == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	disasmOptions := createDisasmOptions(opts)

	if err := validateOptionCombinations(opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8emu [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Base == "" {
		opts.Base = defaultBase
	}

	base, err := strconv.ParseUint(opts.Base, 0, 16)
	if err != nil {
		return fmt.Errorf("parsing base address '%s': %w", opts.Base, err)
	}
	if base%2 != 0 {
		return fmt.Errorf("base address 0x%x is not word aligned", base)
	}
	opts.BaseAddress = uint16(base)
	return nil
}

// validateOptionCombinations checks for options that can not be used together
func validateOptionCombinations(opts options.Program) error {
	if opts.Debug && opts.Quiet {
		return errors.New("debug and quiet mode can not be combined")
	}
	if opts.Batch != "" && opts.Output != "" {
		return errors.New("output file name can not be set in batch mode, the names are generated")
	}
	return nil
}

// createDisasmOptions creates disassembler options based on program options
func createDisasmOptions(opts options.Program) options.Disassembler {
	disasmOptions := options.NewDisassembler()
	disasmOptions.BaseAddress = opts.BaseAddress
	disasmOptions.Lenient = opts.Lenient
	disasmOptions.Labels = opts.Labels

	// inverse logic for hex comments and header
	disasmOptions.HexComments = !opts.NoHexComments
	disasmOptions.Header = !opts.NoHeader
	return disasmOptions
}

const defaultBase = "0x200"

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .lst file naming, for example *.ch8")
	flags.StringVar(&opts.Base, "base", defaultBase, "load address of the first instruction word")
	flags.BoolVar(&opts.Swap, "swap", false, "read instruction words in little-endian byte order")
	flags.BoolVar(&opts.Lenient, "lenient", false, "output unknown opcodes as data words instead of failing")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the decoded instructions against the reference opcode table")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readOutputFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Labels, "labels", false, "output labels for jump and call destinations")
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output instruction words as hex values in comments")
	flags.BoolVar(&opts.NoHeader, "noheader", false, "do not output the checksum header")
}
