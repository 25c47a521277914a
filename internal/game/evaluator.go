/*
Package game contains the core coordination logic for multiplayer word-guessing sessions.

This file implements the per-letter evaluation of a guess against the secret word.
*/
package game

// Verdict is the per-letter outcome of evaluating a guess.
type Verdict string

const (
	// VerdictCorrect means right letter in the right position.
	VerdictCorrect Verdict = "correct"

	// VerdictPresent means the letter exists in the secret but in another position.
	VerdictPresent Verdict = "present"

	// VerdictAbsent means the letter does not occur in the remaining secret letters.
	VerdictAbsent Verdict = "absent"
)

// LetterResult pairs a verdict with the guessed letter it applies to.
type LetterResult struct {
	Verdict Verdict `json:"verdict"`
	Letter  string  `json:"letter"`
}

// Evaluate compares a guess against the secret word and returns one LetterResult
// per guess position. Both inputs must be uppercase and of equal length; the
// coordinator validates this before calling.
//
// The three-pass order guarantees standard duplicate-letter handling: exact
// matches consume their secret letter first, then wrong-position matches consume
// remaining occurrences left to right, and whatever is left is absent. A letter
// repeated in the guess is marked correct/present at most as many times as it
// occurs in the secret.
//
// Evaluate is pure: calling it twice with the same inputs yields identical results.
func Evaluate(guess, secret string) []LetterResult {
	g := []byte(guess)
	s := []byte(secret)
	result := make([]LetterResult, len(g))

	// Pass 1: exact position matches. Consumed secret slots are zeroed so later
	// passes cannot match them again.
	for i := range g {
		result[i].Letter = string(g[i])
		if g[i] == s[i] {
			result[i].Verdict = VerdictCorrect
			s[i] = 0
		}
	}

	// Pass 2: wrong-position matches against the unconsumed secret letters,
	// resolved in guess index order.
	for i := range g {
		if result[i].Verdict != "" {
			continue
		}
		for j := range s {
			if s[j] == g[i] {
				result[i].Verdict = VerdictPresent
				s[j] = 0
				break
			}
		}
	}

	// Pass 3: everything still unmarked is absent.
	for i := range result {
		if result[i].Verdict == "" {
			result[i].Verdict = VerdictAbsent
		}
	}

	return result
}
