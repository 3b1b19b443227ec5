package vm

// Assemble runs the full text-to-bytecode pipeline: Lex, then Parse, then
// Encode each resulting Instruction into its 4-byte word. Each stage
// short-circuits on its first error, so a malformed program never reaches
// the encoder (see SPEC_FULL.md §4.5).
func Assemble(source string) ([]byte, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}

	instructions, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	program := make([]byte, 0, len(instructions)*4)
	for _, instr := range instructions {
		word := Encode(instr)
		program = append(program, word[:]...)
	}
	return program, nil
}
