package common

// IsEmpty reports whether the slice has no elements.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle reports whether the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple reports whether the slice has at least two elements.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the leading element when the slice has one, otherwise
// the zero value, with ok telling the cases apart.
func First[S ~[]E, E any](s S) (elem E, ok bool) {
	if len(s) > 0 {
		elem, ok = s[0], true
	}

	return elem, ok
}

// Unpack2 returns the first two elements of s, zero valued when missing.
func Unpack2[S ~[]E, E any](s S) (first E, second E) {
	if len(s) > 0 {
		first = s[0]
	}
	if len(s) > 1 {
		second = s[1]
	}

	return
}

// Second returns the second of two values, discarding the first.
func Second[T any](_ any, t T) T { return t }

// Map applies f to every element of s and returns the results in order.
func Map[S ~[]E, E, R any](s S, f func(E) R) []R {
	if s == nil {
		return nil
	}

	out := make([]R, len(s))
	for i, e := range s {
		out[i] = f(e)
	}

	return out
}
