package vm

import "strings"

// isASCIISpace reports whether r is one of the six ASCII whitespace
// characters the assembler treats as a token separator. This is narrower
// than unicode.IsSpace on purpose: the assembly language is pure ASCII and
// SPEC_FULL.md §4.2 enumerates exactly these six characters.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Lex splits input on ASCII whitespace and classifies each maximal
// non-whitespace run into a Token. It fails on the first word that does not
// classify (see tokenFromWord), short-circuiting like the rest of the
// assembler pipeline.
func Lex(input string) ([]Token, error) {
	words := strings.FieldsFunc(input, isASCIISpace)
	tokens := make([]Token, 0, len(words))
	for _, word := range words {
		tok, err := tokenFromWord(word)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
