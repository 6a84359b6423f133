package feedback

import (
	"github.com/mcoot/bullscows/internal/dependencies/random"
	"github.com/mcoot/bullscows/internal/model"
)

// Generate draws a secret of the given length for mode.
// Unique mode redraws any digit already present; Free mode draws with replacement.
func Generate(rnd random.Random, mode model.Mode, length int) (model.Code, error) {
	if !mode.Valid() {
		return nil, model.ErrInvalidMode
	}
	if !mode.SupportsLength(length) {
		return nil, model.ErrCodeLengthUnsupported
	}

	code := make(model.Code, 0, length)
	for len(code) < length {
		d := rnd.Intn(10)
		if mode == model.ModeUnique && code.Contains(d) {
			continue
		}
		code = append(code, d)
	}
	return code, nil
}
