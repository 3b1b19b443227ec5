package vm

import (
	"fmt"
	"strings"
)

// FormatProgram renders a loaded program as rows of 4 hex bytes, one row
// per code word, the shape ".program" prints in the REPL.
func FormatProgram(program []byte) string {
	var b strings.Builder
	for i := 0; i+4 <= len(program); i += 4 {
		fmt.Fprintf(&b, "%02X %02X %02X %02X\n", program[i], program[i+1], program[i+2], program[i+3])
	}
	return b.String()
}

// FormatRegisters renders pc, remainder, equal_flag, and all 32 registers,
// the shape ".registers" prints in the REPL.
func FormatRegisters(vm *VM) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pc: %d\n", vm.PC)
	fmt.Fprintf(&b, "remainder: %d\n", vm.Remainder)
	fmt.Fprintf(&b, "equal_flag: %t\n", vm.EqualFlag)
	for i, r := range vm.Registers {
		fmt.Fprintf(&b, "$%d: %d\n", i, r)
	}
	return b.String()
}

// FormatRegister renders a single register, the shape ".reg <n>" prints.
func FormatRegister(vm *VM, n uint8) (string, error) {
	if int(n) >= numRegisters {
		return "", fatalf("register index %d is out of range 0..31", n)
	}
	return fmt.Sprintf("$%d: %d", n, vm.Registers[n]), nil
}
