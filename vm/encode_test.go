package vm

import "testing"

func TestEncodeLoad(t *testing.T) {
	word := Encode(NewLOAD(0, 500))
	assert(t, word == [4]byte{byte(LOAD), 0, 1, 244}, "got %v", word)
}

func TestDecodeRoundTrip(t *testing.T) {
	cases := []Instruction{
		NewHLT(),
		NewLOAD(3, 65535),
		NewADD(0, 1, 2),
		NewSUB(1, 2, 3),
		NewMUL(2, 3, 4),
		NewDIV(3, 4, 5),
		NewJMP(5),
		NewJMPF(6),
		NewJMPB(7),
		NewEQ(0, 1),
		NewNEQ(1, 2),
		NewGT(2, 3),
		NewLT(3, 4),
		NewGTQ(4, 5),
		NewLTQ(5, 6),
		NewJEQ(7),
		NewJNEQ(8),
	}
	for _, instr := range cases {
		got := Decode(Encode(instr))
		assert(t, got == instr, "Decode(Encode(%+v)) = %+v", instr, got)
	}
}

func TestDecodeIllegalOpcode(t *testing.T) {
	got := Decode([4]byte{255, 0, 0, 0})
	assert(t, got.Op == IGL, "got %+v, want Op == IGL", got)
}
