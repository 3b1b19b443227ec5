package vm

import "testing"

func TestOpcodeRoundTripByte(t *testing.T) {
	for op := HLT; op <= JNEQ; op++ {
		got := OpcodeFromByte(op.Byte())
		assert(t, got == op, "OpcodeFromByte(%d.Byte()) = %v, want %v", op, got, op)
	}
}

func TestOpcodeFromByteIllegal(t *testing.T) {
	for b := 17; b <= 255; b++ {
		got := OpcodeFromByte(byte(b))
		assert(t, got == IGL, "OpcodeFromByte(%d) = %v, want IGL", b, got)
	}
}

func TestOpcodeFromNameRoundTrip(t *testing.T) {
	for op := HLT; op <= JNEQ; op++ {
		got, err := OpcodeFromName(asciiLower(op.String()))
		assert(t, err == nil, "OpcodeFromName(%s) returned error: %v", op, err)
		assert(t, got == op, "OpcodeFromName(%s) = %v, want %v", op, got, op)
	}
}

func TestOpcodeFromNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"load", "Load", "LOAD", "lOaD"} {
		op, err := OpcodeFromName(name)
		assert(t, err == nil, "OpcodeFromName(%s) returned error: %v", name, err)
		assert(t, op == LOAD, "OpcodeFromName(%s) = %v, want LOAD", name, op)
	}
}

func TestOpcodeFromNameUnknown(t *testing.T) {
	_, err := OpcodeFromName("nope")
	assert(t, err != nil, "expected error for unknown mnemonic")
}
