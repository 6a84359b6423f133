package feedback

import "github.com/mcoot/bullscows/internal/model"

// Compute scores guess against secret.
//
// Bulls are positional matches. Cows are counted over the remaining
// positions as a multiset intersection: for each digit, the smaller of its
// leftover count in the secret and in the guess. A repeated guess digit can
// therefore never earn more cows than the secret holds of that digit.
// Either code holding anything but 0-9 is rejected with ErrInvalidGuessShape.
func Compute(secret, guess model.Code) (model.Feedback, error) {
	if len(secret) != len(guess) {
		return model.Feedback{}, model.ErrInvalidGuessLength
	}
	if !secret.Valid() || !guess.Valid() {
		return model.Feedback{}, model.ErrInvalidGuessShape
	}

	var fb model.Feedback
	var secretLeft, guessLeft [10]int

	for i := range secret {
		if secret[i] == guess[i] {
			fb.Bulls++
			continue
		}
		secretLeft[secret[i]]++
		guessLeft[guess[i]]++
	}

	for d := 0; d < 10; d++ {
		fb.Cows += min(secretLeft[d], guessLeft[d])
	}

	return fb, nil
}
