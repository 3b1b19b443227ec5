package vm

import "fmt"

// Instruction is a tagged variant with one constructor per opcode (see
// SPEC_FULL.md §9). Go has no native sum type, so the tag (Op) lives beside
// a payload whose fields are only meaningful for the operand shape that Op
// implies:
//
//	nullary:              HLT
//	register + immediate: LOAD            -> Reg0, Imm
//	three registers:      ADD SUB MUL DIV  -> Reg0, Reg1, Reg2
//	two registers:        EQ NEQ GT LT GTQ LTQ -> Reg0, Reg1
//	one register:         JMP JMPF JMPB JEQ JNEQ -> Reg0
type Instruction struct {
	Op   Opcode
	Reg0 uint8
	Reg1 uint8
	Reg2 uint8
	Imm  int32
}

func NewHLT() Instruction { return Instruction{Op: HLT} }

func NewLOAD(reg uint8, imm int32) Instruction {
	return Instruction{Op: LOAD, Reg0: reg, Imm: imm}
}

func newThreeReg(op Opcode, a, b, c uint8) Instruction {
	return Instruction{Op: op, Reg0: a, Reg1: b, Reg2: c}
}

func NewADD(a, b, c uint8) Instruction { return newThreeReg(ADD, a, b, c) }
func NewSUB(a, b, c uint8) Instruction { return newThreeReg(SUB, a, b, c) }
func NewMUL(a, b, c uint8) Instruction { return newThreeReg(MUL, a, b, c) }
func NewDIV(a, b, c uint8) Instruction { return newThreeReg(DIV, a, b, c) }

func newTwoReg(op Opcode, a, b uint8) Instruction {
	return Instruction{Op: op, Reg0: a, Reg1: b}
}

func NewEQ(a, b uint8) Instruction  { return newTwoReg(EQ, a, b) }
func NewNEQ(a, b uint8) Instruction { return newTwoReg(NEQ, a, b) }
func NewGT(a, b uint8) Instruction  { return newTwoReg(GT, a, b) }
func NewLT(a, b uint8) Instruction  { return newTwoReg(LT, a, b) }
func NewGTQ(a, b uint8) Instruction { return newTwoReg(GTQ, a, b) }
func NewLTQ(a, b uint8) Instruction { return newTwoReg(LTQ, a, b) }

func newOneReg(op Opcode, r uint8) Instruction {
	return Instruction{Op: op, Reg0: r}
}

func NewJMP(r uint8) Instruction  { return newOneReg(JMP, r) }
func NewJMPF(r uint8) Instruction { return newOneReg(JMPF, r) }
func NewJMPB(r uint8) Instruction { return newOneReg(JMPB, r) }
func NewJEQ(r uint8) Instruction  { return newOneReg(JEQ, r) }
func NewJNEQ(r uint8) Instruction { return newOneReg(JNEQ, r) }

// String renders an instruction the way it would be written in source,
// useful for REPL/debug printing.
func (i Instruction) String() string {
	switch i.Op {
	case HLT:
		return i.Op.String()
	case LOAD:
		return fmt.Sprintf("%s $%d #%d", i.Op, i.Reg0, i.Imm)
	case ADD, SUB, MUL, DIV:
		return fmt.Sprintf("%s $%d $%d $%d", i.Op, i.Reg0, i.Reg1, i.Reg2)
	case EQ, NEQ, GT, LT, GTQ, LTQ:
		return fmt.Sprintf("%s $%d $%d", i.Op, i.Reg0, i.Reg1)
	case JMP, JMPF, JMPB, JEQ, JNEQ:
		return fmt.Sprintf("%s $%d", i.Op, i.Reg0)
	default:
		return i.Op.String()
	}
}
