package event

import "strings"

// Language is a canonicalized programming-language tag. Spellings that vary
// across archive years collapse to one value; anything else becomes Other
// carrying the lowercased original
type Language int

// Canonical languages with known alternate spellings in the archives
const (
	LangOther Language = iota
	LangC
	LangCC
	LangCOBOL
	LangD
	LangErlang
	LangFSharp
	LangForth
	LangGo
	LangHaskell
	LangLua
	LangVisualBasic
)

// CanonicalLanguage folds a raw language string to its canonical tag. Total:
// unrecognized names return LangOther with the lowercased input
func CanonicalLanguage(s string) (Language, string) {
	lower := strings.ToLower(s)
	switch lower {
	case "c":
		return LangC, lower
	case "c++", "cc", "cpp", "cxx":
		return LangCC, lower
	case "cobol":
		return LangCOBOL, lower
	case "d":
		return LangD, lower
	case "erlang":
		return LangErlang, lower
	case "fsharp":
		return LangFSharp, lower
	case "forth":
		return LangForth, lower
	case "golang", "go":
		return LangGo, lower
	case "haskell":
		return LangHaskell, lower
	case "lua":
		return LangLua, lower
	case "visual basic":
		return LangVisualBasic, lower
	}
	return LangOther, lower
}
