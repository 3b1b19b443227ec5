package vm

// Encode packs an Instruction into its 4-byte wire form: the opcode byte
// followed by three operand bytes whose meaning depends on Op's shape (see
// SPEC_FULL.md §4.4):
//
//	HLT                    -> op, 0,    0,    0
//	LOAD                   -> op, reg,  imm hi, imm lo   (imm is big-endian u16)
//	ADD SUB MUL DIV        -> op, a,    b,    c
//	EQ NEQ GT LT GTQ LTQ   -> op, a,    b,    0
//	JMP JMPF JMPB JEQ JNEQ -> op, reg,  0,    0
func Encode(i Instruction) [4]byte {
	var out [4]byte
	out[0] = i.Op.Byte()

	switch i.Op {
	case HLT:
		// no operands
	case LOAD:
		imm := uint16(i.Imm)
		out[1] = i.Reg0
		out[2] = byte(imm >> 8)
		out[3] = byte(imm)
	case ADD, SUB, MUL, DIV:
		out[1] = i.Reg0
		out[2] = i.Reg1
		out[3] = i.Reg2
	case EQ, NEQ, GT, LT, GTQ, LTQ:
		out[1] = i.Reg0
		out[2] = i.Reg1
	case JMP, JMPF, JMPB, JEQ, JNEQ:
		out[1] = i.Reg0
	default:
		panic("Encode: no encoding for opcode " + i.Op.String())
	}
	return out
}

// Decode unpacks a 4-byte wire word back into an Instruction. If the opcode
// byte is not one of the 17 legal codes, the returned Instruction carries
// Op == IGL and the caller is responsible for treating that as fatal (see
// the fetch/decode/execute loop in exec.go).
//
// Decode(Encode(i)) == i for every Instruction whose LOAD immediate lies in
// 0..65535; SPEC_FULL.md §9 scopes the round-trip law to that range and
// Assemble does not reject immediates outside it at assembly time.
func Decode(b [4]byte) Instruction {
	op := OpcodeFromByte(b[0])
	switch op {
	case HLT:
		return Instruction{Op: HLT}
	case LOAD:
		imm := uint16(b[2])<<8 | uint16(b[3])
		return Instruction{Op: LOAD, Reg0: b[1], Imm: int32(imm)}
	case ADD, SUB, MUL, DIV:
		return Instruction{Op: op, Reg0: b[1], Reg1: b[2], Reg2: b[3]}
	case EQ, NEQ, GT, LT, GTQ, LTQ:
		return Instruction{Op: op, Reg0: b[1], Reg1: b[2]}
	case JMP, JMPF, JMPB, JEQ, JNEQ:
		return Instruction{Op: op, Reg0: b[1]}
	default:
		return Instruction{Op: IGL}
	}
}
