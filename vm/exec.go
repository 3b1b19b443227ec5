package vm

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strconv"
)

// step implements execute_one (SPEC_FULL.md §4.7): fetch the opcode at pc,
// decode it, dispatch to its handler, and report whether execution should
// stop. halted is true for both HLT (err == nil) and any fatal condition
// (err is a *FatalError); halted is false when the instruction completed
// and the loop should keep going.
func (vm *VM) step() (halted bool, err error) {
	if vm.PC >= uint32(len(vm.Program)) {
		return true, fatalf("Program counter has exceeded program length! Did you forget to include an HLT?")
	}

	op := OpcodeFromByte(vm.nextU8())
	if op == IGL {
		return true, fatalf("Unrecognized opcode found. Terminating!")
	}

	switch op {
	case HLT:
		return true, nil

	case LOAD:
		reg := vm.nextU8()
		imm := vm.nextU16BE()
		r, err := vm.checkRegister(reg)
		if err != nil {
			return true, err
		}
		vm.Registers[r] = int32(imm)

	case ADD, SUB, MUL, DIV:
		a, b, c, err := vm.fetchThreeRegs()
		if err != nil {
			return true, err
		}
		switch op {
		case ADD:
			vm.Registers[c] = vm.Registers[a] + vm.Registers[b]
		case SUB:
			vm.Registers[c] = vm.Registers[a] - vm.Registers[b]
		case MUL:
			vm.Registers[c] = vm.Registers[a] * vm.Registers[b]
		case DIV:
			if vm.Registers[b] == 0 {
				return true, fatalf("attempted to divide by zero")
			}
			av, bv := vm.Registers[a], vm.Registers[b]
			vm.Registers[c] = av / bv
			vm.Remainder = uint32(av % bv)
		}

	case JMP:
		r, err := vm.fetchOneReg()
		if err != nil {
			return true, err
		}
		vm.PC = uint32(vm.Registers[r])

	case JMPF:
		r, err := vm.fetchOneReg()
		if err != nil {
			return true, err
		}
		vm.PC += uint32(vm.Registers[r])

	case JMPB:
		r, err := vm.fetchOneReg()
		if err != nil {
			return true, err
		}
		offset := uint32(vm.Registers[r])
		if offset > vm.PC {
			return true, fatalf("backward jump by %d underflows pc %d", offset, vm.PC)
		}
		vm.PC -= offset

	case EQ, NEQ, GT, LT, GTQ, LTQ:
		a, b, err := vm.fetchTwoRegs()
		if err != nil {
			return true, err
		}
		// The opcode byte + two register bytes have been consumed; every
		// comparison still owes the engine one more byte of padding to
		// reach the full 4-byte code word (SPEC_FULL.md §4.6).
		vm.PC++
		switch op {
		case EQ:
			vm.EqualFlag = vm.Registers[a] == vm.Registers[b]
		case NEQ:
			vm.EqualFlag = vm.Registers[a] != vm.Registers[b]
		case GT:
			vm.EqualFlag = vm.Registers[a] > vm.Registers[b]
		case LT:
			vm.EqualFlag = vm.Registers[a] < vm.Registers[b]
		case GTQ:
			vm.EqualFlag = vm.Registers[a] >= vm.Registers[b]
		case LTQ:
			vm.EqualFlag = vm.Registers[a] <= vm.Registers[b]
		}

	case JEQ:
		r, err := vm.fetchOneReg()
		if err != nil {
			return true, err
		}
		if vm.EqualFlag {
			vm.PC = uint32(vm.Registers[r])
		} else {
			vm.PC += 2
		}

	case JNEQ:
		r, err := vm.fetchOneReg()
		if err != nil {
			return true, err
		}
		if !vm.EqualFlag {
			vm.PC = uint32(vm.Registers[r])
		} else {
			vm.PC += 2
		}

	default:
		return true, fatalf("no handler for opcode %v", op)
	}

	return false, nil
}

func (vm *VM) fetchOneReg() (uint8, error) {
	return vm.checkRegister(vm.nextU8())
}

func (vm *VM) fetchTwoRegs() (uint8, uint8, error) {
	a, err := vm.checkRegister(vm.nextU8())
	if err != nil {
		return 0, 0, err
	}
	b, err := vm.checkRegister(vm.nextU8())
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func (vm *VM) fetchThreeRegs() (uint8, uint8, uint8, error) {
	a, b, err := vm.fetchTwoRegs()
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := vm.checkRegister(vm.nextU8())
	if err != nil {
		return 0, 0, 0, err
	}
	return a, b, c, nil
}

// RunOnce executes exactly one instruction and reports whether the VM has
// halted (by HLT or by a fatal condition). It never touches the GC knob or
// prints diagnostics; callers stepping under their own supervision are
// expected to inspect err themselves.
func (vm *VM) RunOnce() (halted bool, err error) {
	return vm.step()
}

// Run drives the fetch/decode/execute loop to completion, writing the
// observable trace contract (SPEC_FULL.md §7) to out/errOut: "HLT
// encountered." on normal termination, or the fatal diagnostic otherwise.
// It returns the process exit code the engine would produce: 0 for HLT, -1
// for any fatal condition.
//
// The garbage collector is disabled for the duration of the loop and
// restored afterward, mirroring the teacher's RunProgram: the register file
// and program buffer are allocated up front, so the only allocations left in
// the hot path would be GC bookkeeping itself.
func (vm *VM) Run(out, errOut io.Writer) int {
	restore := disableGC()
	defer restore()

	for {
		halted, err := vm.step()
		if !halted {
			continue
		}
		if err == nil {
			fmt.Fprintln(out, "HLT encountered.")
			return 0
		}
		fmt.Fprintln(errOut, err.Error())
		return -1
	}
}

func disableGC() func() {
	key, ok := os.LookupEnv("GOGC")
	if !ok {
		key = "100"
	}
	percent, err := strconv.ParseInt(key, 10, 32)
	if err != nil {
		percent = 100
	}

	debug.SetGCPercent(-1)
	return func() {
		debug.SetGCPercent(int(percent))
	}
}
