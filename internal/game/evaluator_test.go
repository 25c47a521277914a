package game

import "testing"

func TestEvaluateFixedPairs(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
		want   []Verdict
	}{
		{
			// No position matches; every letter of the guess occurs in the secret.
			name:   "all letters shuffled",
			guess:  "PAPER",
			secret: "APPLE",
			want:   []Verdict{VerdictPresent, VerdictPresent, VerdictCorrect, VerdictPresent, VerdictAbsent},
		},
		{
			// Both words repeat E; exactly two E marks since the secret has two.
			name:   "both repeat same letter",
			guess:  "SPEED",
			secret: "ERASE",
			want:   []Verdict{VerdictPresent, VerdictAbsent, VerdictPresent, VerdictPresent, VerdictAbsent},
		},
		{
			// Guess has three Es, secret only one, already consumed by the exact
			// match at the last position. The remaining Es must be absent.
			name:   "guess repeats letter secret does not",
			guess:  "GEESE",
			secret: "THOSE",
			want:   []Verdict{VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictCorrect, VerdictCorrect},
		},
		{
			// Secret repeats P; the single P in the guess earns one mark.
			name:   "secret repeats letter guess does not",
			guess:  "PLANE",
			secret: "APPLE",
			want:   []Verdict{VerdictPresent, VerdictPresent, VerdictPresent, VerdictAbsent, VerdictCorrect},
		},
		{
			name:   "exact matches consume before present",
			guess:  "SPEED",
			secret: "SEEDS",
			want:   []Verdict{VerdictCorrect, VerdictAbsent, VerdictCorrect, VerdictPresent, VerdictPresent},
		},
		{
			name:   "all correct",
			guess:  "LIGHT",
			secret: "LIGHT",
			want:   []Verdict{VerdictCorrect, VerdictCorrect, VerdictCorrect, VerdictCorrect, VerdictCorrect},
		},
		{
			// Two wrong-position candidates for one secret L: the earliest guess
			// index wins, the later occurrence is absent.
			name:   "earliest index wins tie break",
			guess:  "ALLOW",
			secret: "LIGHT",
			want:   []Verdict{VerdictAbsent, VerdictPresent, VerdictAbsent, VerdictAbsent, VerdictAbsent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.guess, tt.secret)

			if len(got) != WordLength {
				t.Fatalf("got %d results, want %d", len(got), WordLength)
			}
			for i, result := range got {
				if result.Verdict != tt.want[i] {
					t.Errorf("position %d: got %s, want %s", i, result.Verdict, tt.want[i])
				}
				if result.Letter != string(tt.guess[i]) {
					t.Errorf("position %d: got letter %q, want %q", i, result.Letter, string(tt.guess[i]))
				}
			}
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	first := Evaluate("SPEED", "ERASE")
	second := Evaluate("SPEED", "ERASE")

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("position %d: first call %v, second call %v", i, first[i], second[i])
		}
	}
}

func TestEvaluateMarkMultiplicity(t *testing.T) {
	// The number of correct+present marks for a letter equals
	// min(occurrences in guess, occurrences in secret).
	tests := []struct {
		guess  string
		secret string
	}{
		{"SPEED", "ERASE"},
		{"GEESE", "THOSE"},
		{"LEVEL", "HELLO"},
		{"MAMMA", "MADAM"},
	}

	for _, tt := range tests {
		results := Evaluate(tt.guess, tt.secret)

		for letter := byte('A'); letter <= 'Z'; letter++ {
			inGuess, inSecret, marked := 0, 0, 0
			for i := 0; i < WordLength; i++ {
				if tt.guess[i] == letter {
					inGuess++
					if results[i].Verdict != VerdictAbsent {
						marked++
					}
				}
				if tt.secret[i] == letter {
					inSecret++
				}
			}

			limit := inGuess
			if inSecret < limit {
				limit = inSecret
			}
			if marked != limit {
				t.Errorf("%s vs %s: letter %c marked %d times, want %d",
					tt.guess, tt.secret, letter, marked, limit)
			}
		}
	}
}
