package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KianKhadempour/potassium/vm"
)

var asmCmd = &cobra.Command{
	Use:   "asm <file>",
	Short: "Assemble a source file and print the resulting bytecode",
	Args:  cobra.ExactArgs(1),
	RunE:  runAsm,
}

func runAsm(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	program, err := vm.Assemble(string(data))
	if err != nil {
		return fmt.Errorf("assembling: %w", err)
	}

	fmt.Print(vm.FormatProgram(program))
	return nil
}
