package gen

import "errors"

// ErrExhaustedCandidateSpace reports that the producer kept yielding
// already-taken candidates for the whole retry budget.
var ErrExhaustedCandidateSpace = errors.New("unique: exhausted candidate space")

// DefaultUniqueAttempts bounds Unique retries unless the caller overrides it.
const DefaultUniqueAttempts = 1000

// Unique invokes produce until exists reports the candidate as unused.
// maxAttempts <= 0 retries forever, which matches the behavior of checking
// against a live catalog where collisions become increasingly rare; a
// positive bound turns a shrunken candidate space into
// ErrExhaustedCandidateSpace instead of a hang.
func Unique[T any](produce func() (T, error), exists func(T) (bool, error), maxAttempts int) (T, error) {
	var zero T
	for attempt := 0; maxAttempts <= 0 || attempt < maxAttempts; attempt++ {
		candidate, err := produce()
		if err != nil {
			return zero, err
		}
		taken, err := exists(candidate)
		if err != nil {
			return zero, err
		}
		if !taken {
			return candidate, nil
		}
	}
	return zero, ErrExhaustedCandidateSpace
}
