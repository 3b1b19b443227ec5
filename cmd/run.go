package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KianKhadempour/potassium/vm"
)

var runDebug bool

var runCmd = &cobra.Command{
	Use:   "run <file...>",
	Short: "Assemble and run one or more source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().BoolVarP(&runDebug, "debug", "d", false, "single-step, printing register state after every instruction")
}

func runRun(cmd *cobra.Command, args []string) error {
	var source strings.Builder
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if i > 0 {
			source.WriteByte('\n')
		}
		source.Write(data)
	}

	program, err := vm.Assemble(source.String())
	if err != nil {
		return fmt.Errorf("assembling: %w", err)
	}

	m := vm.New()
	m.SetProgram(program)

	var exitCode int
	if runDebug {
		exitCode = runDebugMode(m)
	} else {
		exitCode = m.Run(os.Stdout, os.Stderr)
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// runDebugMode single-steps the VM, printing FormatRegisters after every
// instruction, mirroring the teacher's RunProgramDebugMode.
func runDebugMode(m *vm.VM) int {
	for {
		halted, err := m.RunOnce()
		fmt.Fprint(os.Stdout, vm.FormatRegisters(m))
		if !halted {
			continue
		}
		if err == nil {
			fmt.Fprintln(os.Stdout, "HLT encountered.")
			return 0
		}
		fmt.Fprintln(os.Stderr, err.Error())
		return -1
	}
}
