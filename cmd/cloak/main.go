package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/saylorsolutions/cloak64/cmd/internal"
	"github.com/saylorsolutions/cloak64/pkg/cloak"
	flag "github.com/spf13/pflag"
)

var version = "dev"

type params struct {
	input     string
	output    string
	sig       uint32
	key       byte
	quiet     bool
	noClobber bool
}

func (p params) done(msg string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Printf(msg+"\n", args...)
}

type mode struct {
	// hasOutput is true when the second positional argument is an output file.
	hasOutput bool
	run       func(p params) error
}

var modes = map[string]mode{
	"craft":   {hasOutput: true, run: craft},
	"uncraft": {hasOutput: true, run: uncraft},
	"inspect": {hasOutput: false, run: inspect},
}

func modeNames() []string {
	names := lo.Keys(modes)
	sort.Strings(names)
	return names
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		helpFlag      bool
		versionFlag   bool
		quietFlag     bool
		noClobberFlag bool
	)
	flags := flag.NewFlagSet("cloak", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&versionFlag, "version", "v", false, "Prints the version of this tool.")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "Don't print a message when the operation completes.")
	flags.BoolVarP(&noClobberFlag, "no-clobber", "n", false, "Refuse to overwrite an existing output file.")
	flags.Usage = func() {
		fmt.Printf(`
cloak wraps a file in a CLOAK64 container: a 512 byte header holding a signature, the payload size, the header size, and a CRC-32 of the payload, followed by the payload XOR'd with a one byte key.

USAGE:
    cloak craft <input_file> <output_file> [sig] [key]
    cloak uncraft <input_file> <output_file> [sig] [key]
    cloak inspect <input_file> [sig] [key]

ARGS:
    <input_file>   Path to the input file
    <output_file>  Path to the output file
    [sig]          Optional file signature (default: 0x%08X)
    [key]          Optional XOR key (default: 0x%02X)

sig and key may be given in hex (0x), octal (0o or a leading 0), binary (0b), or decimal.

FLAGS:
%s
EXAMPLES:
    cloak craft payload.efi cloak64.dat
    cloak craft payload.efi cloak64.dat 0x4D524C41 0xB3
    cloak uncraft cloak64.dat restored.efi
    cloak uncraft cloak64.dat restored.efi 0x4D524C41 0xB3
    cloak inspect cloak64.dat

SECURITY:
    This is not encryption, this is obfuscation. Anyone with the container can recover the payload by trying all 256 keys.
`, cloak.DefaultSignature, cloak.DefaultKey, flags.FlagUsages())
	}
	if len(args) == 0 {
		flags.Usage()
		return internal.ExitUsage
	}
	if err := flags.Parse(args); err != nil {
		internal.Echo("Error parsing flags: %v", err)
		return internal.ExitUsage
	}
	if helpFlag {
		flags.Usage()
		return internal.ExitOK
	}
	if versionFlag {
		fmt.Println(version)
		return internal.ExitOK
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return internal.ExitUsage
	}

	name := flags.Arg(0)
	m, ok := modes[name]
	if !ok {
		internal.Echo("Unknown mode: %s\nValid modes: %s", name, strings.Join(modeNames(), ", "))
		return internal.ExitUnknownMode
	}

	positional := flags.Args()[1:]
	required := 1
	if m.hasOutput {
		required = 2
	}
	if len(positional) < required || len(positional) > required+2 {
		flags.Usage()
		return internal.ExitUsage
	}

	p := params{
		input:     positional[0],
		quiet:     quietFlag,
		noClobber: noClobberFlag,
	}
	if m.hasOutput {
		p.output = positional[1]
	}
	optional := positional[required:]
	var err error
	if p.sig, err = internal.ParseSignature(argAt(optional, 0)); err != nil {
		internal.Echo("%v", err)
		return internal.ExitUsage
	}
	if p.key, err = internal.ParseKey(argAt(optional, 1)); err != nil {
		internal.Echo("%v", err)
		return internal.ExitUsage
	}

	if err := m.run(p); err != nil {
		internal.Echo("%s", describe(err, p))
		return internal.ExitCode(err)
	}
	return internal.ExitOK
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func describe(err error, p params) string {
	switch {
	case errors.Is(err, cloak.ErrReadFailure), errors.Is(err, cloak.ErrEmptyInput):
		return fmt.Sprintf("Failed to read input file: %s (%v)", p.input, err)
	case errors.Is(err, cloak.ErrTooSmall):
		return fmt.Sprintf("File too small to uncraft (must be > %#x bytes): %v", cloak.HeaderSize, err)
	case errors.Is(err, cloak.ErrSignatureMismatch):
		return fmt.Sprintf("Invalid file format: %v", err)
	case errors.Is(err, cloak.ErrWriteFailure):
		return fmt.Sprintf("Failed to write output file: %s (%v)", p.output, err)
	default:
		return err.Error()
	}
}

func craft(p params) error {
	if err := internal.CheckOutput(p.output, p.noClobber); err != nil {
		return err
	}
	data, err := internal.ReadInput(p.input)
	if err != nil {
		return err
	}
	out, err := cloak.Craft(data, p.sig, p.key)
	if err != nil {
		return err
	}
	if err := internal.WriteOutput(p.output, out, p.noClobber); err != nil {
		return err
	}
	p.done("Craft complete. Output written to %s", p.output)
	return nil
}

func uncraft(p params) error {
	if err := internal.CheckOutput(p.output, p.noClobber); err != nil {
		return err
	}
	data, err := internal.ReadInput(p.input)
	if err != nil {
		return err
	}
	out, err := cloak.Uncraft(data, p.sig, p.key)
	if err != nil {
		return err
	}
	if err := internal.WriteOutput(p.output, out, p.noClobber); err != nil {
		return err
	}
	p.done("Uncraft complete. Output written to %s", p.output)
	return nil
}

func inspect(p params) error {
	data, err := internal.ReadInput(p.input)
	if err != nil {
		return err
	}
	report, err := cloak.Inspect(data, p.sig, p.key)
	if err != nil {
		return err
	}
	fmt.Println(report.Header)
	fmt.Print(report)
	return report.Err()
}
