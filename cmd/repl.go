package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KianKhadempour/potassium/vm"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-assemble-run loop",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runREPL(os.Stdin, os.Stdout, os.Stderr)
	},
}

type repl struct {
	history []string
	vm      *vm.VM
	out     *bufio.Writer
	errOut  *bufio.Writer
}

func runREPL(in *os.File, out, errOut *os.File) {
	r := &repl{
		vm:     vm.New(),
		out:    bufio.NewWriter(out),
		errOut: bufio.NewWriter(errOut),
	}
	defer r.out.Flush()
	defer r.errOut.Flush()

	fmt.Fprintln(r.out, "Welcome to the potassium REPL")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, ">>> ")
		r.out.Flush()

		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		r.dispatch(line)
		r.history = append(r.history, line)
		r.out.Flush()
		r.errOut.Flush()
	}
}

func (r *repl) dispatch(line string) {
	switch {
	case line == ".quit" || line == ".exit":
		fmt.Fprintln(r.out, "Exiting the potassium REPL.")
		r.out.Flush()
		os.Exit(0)

	case line == ".history":
		for _, cmd := range r.history {
			fmt.Fprintln(r.out, cmd)
		}

	case line == ".program":
		fmt.Fprint(r.out, vm.FormatProgram(r.vm.Program))

	case line == ".registers":
		fmt.Fprint(r.out, vm.FormatRegisters(r.vm))

	case line == ".run":
		r.vm.Run(r.out, r.errOut)

	case strings.HasPrefix(line, ".load "):
		r.load(strings.TrimPrefix(line, ".load "))

	case strings.HasPrefix(line, ".reg"):
		r.printRegister(strings.TrimSpace(strings.TrimPrefix(line, ".reg")))

	default:
		r.assembleOrHex(line)
	}
}

func (r *repl) load(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(r.out, "Failed to read file")
		return
	}
	program, err := vm.Assemble(string(data))
	if err != nil {
		fmt.Fprintln(r.out, "Failed to assemble program")
		return
	}
	r.vm.SetProgram(program)
}

func (r *repl) printRegister(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		fmt.Fprintln(r.out, "Invalid register number")
		return
	}
	text, err := vm.FormatRegister(r.vm, uint8(n))
	if err != nil {
		fmt.Fprintln(r.out, "Invalid register number")
		return
	}
	fmt.Fprintln(r.out, text)
}

func (r *repl) assembleOrHex(line string) {
	program, err := vm.Assemble(line)
	if err != nil {
		program, err = parseHex(line)
	}
	if err != nil {
		fmt.Fprintln(r.out, "Invalid input")
		return
	}
	r.vm.AppendProgram(program)
	halted, err := r.vm.RunOnce()
	if halted && err == nil {
		fmt.Fprintln(r.out, "HLT encountered.")
	} else if halted {
		fmt.Fprintln(r.errOut, err.Error())
	}
}

// parseHex parses a REPL line as space-separated two-digit hex bytes, the
// fallback form the REPL accepts when a line doesn't assemble.
func parseHex(input string) ([]byte, error) {
	fields := strings.Split(input, " ")
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		b, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, err
		}
		out = append(out, byte(b))
	}
	return out, nil
}
