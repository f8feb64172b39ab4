package reconcile

import "testing"

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"year in parentheses", "The Matrix (1999)", "The Matrix"},
		{"already clean", "The Matrix", "The Matrix"},
		{"leading year", "2001: A Space Odyssey", "A Space Odyssey"},
		{"punctuation only", "Mr. Robot", "Mr Robot"},
		{"digit inside word kept", "Se7en", "Se7en"},
		{"apostrophe", "It's Always Sunny", "Its Always Sunny"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.title); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestCleanTitle_Idempotent(t *testing.T) {
	titles := []string{"The Matrix (1999)", "2001: A Space Odyssey", "Mr. Robot"}
	for _, title := range titles {
		once := CleanTitle(title)
		if twice := CleanTitle(once); twice != once {
			t.Errorf("CleanTitle not idempotent for %q: %q != %q", title, twice, once)
		}
	}
}

func TestCleanTitle_CaseSensitive(t *testing.T) {
	// No case folding: the comparison downstream is case sensitive.
	if CleanTitle("the matrix") == CleanTitle("The Matrix") {
		t.Error("CleanTitle must not fold case")
	}
}
