package catalog

import (
	"testing"

	"github.com/example/legame/pkg/models"
)

func TestNamedListsAreNonEmptyAndUnique(t *testing.T) {
	for _, c := range Named() {
		t.Run(string(c), func(t *testing.T) {
			words := Words(c)
			if len(words) == 0 {
				t.Fatalf("category %s has no words", c)
			}
			seen := make(map[models.WordKey]bool)
			for _, w := range words {
				if seen[w.Key()] {
					t.Errorf("duplicate entry %s/%s", w.EnglishWord, w.FrenchWord)
				}
				seen[w.Key()] = true
				if w.Gender != models.Masculine && w.Gender != models.Feminine {
					t.Errorf("entry %s has invalid gender %q", w.EnglishWord, w.Gender)
				}
				if !Contains(c, w) {
					t.Errorf("Contains(%s, %s) = false", c, w.EnglishWord)
				}
			}
		})
	}
}

func TestAllIsUnionWithoutDuplicates(t *testing.T) {
	want := make(map[models.WordKey]bool)
	for _, c := range Named() {
		for _, w := range Words(c) {
			want[w.Key()] = true
		}
	}

	all := Words(All)
	if len(all) != len(want) {
		t.Fatalf("len(Words(All)) = %d, want %d", len(all), len(want))
	}
	seen := make(map[models.WordKey]bool)
	for _, w := range all {
		if seen[w.Key()] {
			t.Errorf("duplicate entry in All: %s", w.EnglishWord)
		}
		seen[w.Key()] = true
		if !want[w.Key()] {
			t.Errorf("unexpected entry in All: %s", w.EnglishWord)
		}
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	words := Words(Basic)
	words[0].EnglishWord = "changed"
	if Words(Basic)[0].EnglishWord == "changed" {
		t.Fatal("Words must not expose the backing list")
	}
}

func TestWordsUnknownCategoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown category")
		}
	}()
	Words(Category("cooking"))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "basic", want: Basic},
		{input: " Family ", want: Family},
		{input: "everyday", want: Common},
		{input: "ALL", want: All},
		{input: "anatomy", want: Anatomy},
		{input: "cooking", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestContainsUsesIdentityNotGender(t *testing.T) {
	w := models.Word{EnglishWord: "Time", FrenchWord: "Le temps", Gender: models.Feminine}
	if !Contains(Basic, w) {
		t.Error("Contains should match on english/french text only")
	}
	if Contains(Anatomy, w) {
		t.Error("Time is not an anatomy word")
	}
	if !Contains(All, w) {
		t.Error("All should contain every named word")
	}
}

func TestCategoriesOf(t *testing.T) {
	head := models.Word{EnglishWord: "Head", FrenchWord: "La tête"}
	got := CategoriesOf(head)
	if len(got) != 2 || got[0] != Basic || got[1] != Anatomy {
		t.Errorf("CategoriesOf(Head) = %v, want [basic anatomy]", got)
	}
}

func TestCategoriesEndsWithAll(t *testing.T) {
	cats := Categories()
	if cats[len(cats)-1] != All {
		t.Errorf("last category = %v, want all", cats[len(cats)-1])
	}
	if All.Title() != "All Words" {
		t.Errorf("All.Title() = %q", All.Title())
	}
}
