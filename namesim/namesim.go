// Package namesim compares author-name strings of signatures.
//
// It only does what the clustering comparisons need: fold case and
// diacritics, split into words, separate the surname from the given names,
// and score agreement between two names. It is not a general name parser.
package namesim

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Agreement scores. A surname match alone is worth SurnameOnly; each given
// name that agrees lifts the score towards 1.
const (
	FullMatch    = 1.0
	InitialMatch = 0.8
	SurnameOnly  = 0.5
)

// Name is a parsed, normalised author name.
type Name struct {
	Surname string   // all surname words joined by a space
	Given   []string // given names or initials, in order
}

// Normalize folds case, strips combining marks and trims s.
// "Gödel" and "GODEL" both become "godel".
//
// Transformers are stateful, so a fresh chain is built per call; Normalize is
// safe for concurrent use.
func Normalize(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return cases.Fold().String(strings.TrimSpace(out))
}

// Tokens splits the normalised form of s into UAX #29 words, keeping only
// words that contain a letter or a digit.
func Tokens(s string) []string {
	var out []string
	seg := words.FromString(Normalize(s))
	for seg.Next() {
		w := seg.Value()
		if strings.IndexFunc(w, isWordRune) >= 0 {
			out = append(out, w)
		}
	}

	return out
}

func isWordRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

// Parse splits s into surname and given names.
//
// "Surname, Given Names" is the bibliographic form; without a comma the last
// word is taken as the surname. An empty or punctuation-only s gives Name{}.
func Parse(s string) Name {
	if i := strings.IndexByte(s, ','); i >= 0 {
		return Name{
			Surname: strings.Join(Tokens(s[:i]), " "),
			Given:   Tokens(s[i+1:]),
		}
	}
	toks := Tokens(s)
	if len(toks) == 0 {
		return Name{}
	}

	return Name{Surname: toks[len(toks)-1], Given: toks[:len(toks)-1]}
}

// Similarity scores how likely a and b name the same person, in [0, 1].
//
//   - 0 when either surname is empty, the surnames differ, or a pair of
//     given names contradicts (different first letters, or two different
//     full names).
//   - SurnameOnly when the surnames agree and one side has no given names.
//   - Otherwise SurnameOnly + (1-SurnameOnly)·mean agreement over the given
//     names both sides have, full match = FullMatch, initial = InitialMatch.
func Similarity(a, b string) float64 {
	return Parse(a).Similarity(Parse(b))
}

// Similarity is the parsed form of the package-level Similarity.
func (n Name) Similarity(o Name) float64 {
	if n.Surname == "" || n.Surname != o.Surname {
		return 0
	}
	k := min(len(n.Given), len(o.Given))
	if k == 0 {
		return SurnameOnly
	}

	var sum float64
	for i := 0; i < k; i++ {
		s := givenAgreement(n.Given[i], o.Given[i])
		if s == 0 {
			return 0
		}
		sum += s
	}

	return SurnameOnly + (1-SurnameOnly)*sum/float64(k)
}

// givenAgreement compares two normalised given-name words.
func givenAgreement(x, y string) float64 {
	if x == y {
		return FullMatch
	}
	rx, _ := utf8.DecodeRuneInString(x)
	ry, _ := utf8.DecodeRuneInString(y)
	if rx != ry {
		return 0
	}
	if utf8.RuneCountInString(x) == 1 || utf8.RuneCountInString(y) == 1 {
		return InitialMatch
	}

	return 0
}
