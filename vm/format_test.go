package vm

import (
	"strings"
	"testing"
)

func TestFormatProgram(t *testing.T) {
	program, err := Assemble("LOAD $0 #500")
	assert(t, err == nil, "Assemble returned error: %v", err)
	got := FormatProgram(program)
	assert(t, got == "01 00 01 F4\n", "got %q", got)
}

func TestFormatProgramMultipleWords(t *testing.T) {
	program := concatWords(Encode(NewHLT()), Encode(NewLOAD(0, 1)))
	got := FormatProgram(program)
	assert(t, got == "00 00 00 00\n01 00 00 01\n", "got %q", got)
}

func TestFormatRegisters(t *testing.T) {
	m := New()
	m.Registers[0] = 7
	m.PC = 4
	m.Remainder = 2
	m.EqualFlag = true

	got := FormatRegisters(m)
	for _, want := range []string{"pc: 4\n", "remainder: 2\n", "equal_flag: true\n", "$0: 7\n", "$31: 0\n"} {
		assert(t, strings.Contains(got, want), "got %q, missing %q", got, want)
	}
}

func TestFormatRegister(t *testing.T) {
	m := New()
	m.Registers[3] = 42

	got, err := FormatRegister(m, 3)
	assert(t, err == nil, "FormatRegister returned error: %v", err)
	assert(t, got == "$3: 42", "got %q", got)
}

func TestFormatRegisterOutOfRange(t *testing.T) {
	m := New()
	_, err := FormatRegister(m, 32)
	assert(t, err != nil, "expected error for out-of-range register")
}
