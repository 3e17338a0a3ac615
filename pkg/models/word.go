package models

import "fmt"

// Gender is the grammatical gender of a French noun
type Gender string

const (
	Masculine Gender = "masculine"
	Feminine  Gender = "feminine"
)

// ParseGender converts user or stored input into a Gender
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case Masculine, Feminine:
		return Gender(s), nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// Word represents an English/French vocabulary pair with the French noun's gender.
// Two words are the same word when their English and French text match; the
// gender takes no part in identity.
type Word struct {
	EnglishWord string `json:"englishWord" db:"english_word"`
	FrenchWord  string `json:"frenchWord" db:"french_word"`
	Gender      Gender `json:"gender" db:"gender"`
}

// WordKey identifies a word for set membership
type WordKey struct {
	English string
	French  string
}

// Key returns the identity of the word
func (w Word) Key() WordKey {
	return WordKey{English: w.EnglishWord, French: w.FrenchWord}
}

// Same reports whether both values denote the same vocabulary entry
func (w Word) Same(other Word) bool {
	return w.Key() == other.Key()
}
