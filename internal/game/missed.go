package game

import "github.com/example/legame/pkg/models"

// MissedSet is an insertion-ordered set of words keyed by english/french text
type MissedSet struct {
	words []models.Word
	index map[models.WordKey]int
}

// NewMissedSet builds a set from words, dropping repeats
func NewMissedSet(words ...models.Word) *MissedSet {
	s := &MissedSet{index: make(map[models.WordKey]int)}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts w and reports whether it was not already present
func (s *MissedSet) Add(w models.Word) bool {
	if _, ok := s.index[w.Key()]; ok {
		return false
	}
	s.index[w.Key()] = len(s.words)
	s.words = append(s.words, w)
	return true
}

// Contains reports whether a word with the same identity is in the set
func (s *MissedSet) Contains(w models.Word) bool {
	_, ok := s.index[w.Key()]
	return ok
}

// Len returns the number of words in the set
func (s *MissedSet) Len() int {
	return len(s.words)
}

// Words returns a copy of the set's contents in insertion order
func (s *MissedSet) Words() []models.Word {
	return append([]models.Word(nil), s.words...)
}

// Filter returns the words matching keep, in insertion order
func (s *MissedSet) Filter(keep func(models.Word) bool) []models.Word {
	var out []models.Word
	for _, w := range s.words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

// RemoveIf deletes every word matching drop and returns how many were removed
func (s *MissedSet) RemoveIf(drop func(models.Word) bool) int {
	kept := s.words[:0]
	removed := 0
	for _, w := range s.words {
		if drop(w) {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	s.words = kept
	s.index = make(map[models.WordKey]int, len(kept))
	for i, w := range kept {
		s.index[w.Key()] = i
	}
	return removed
}

// Clear empties the set
func (s *MissedSet) Clear() {
	s.words = nil
	s.index = make(map[models.WordKey]int)
}
