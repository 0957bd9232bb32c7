//go:build largedates

package civil

// Year bounds for the largedates build.
const (
	// MinYear is the smallest year representable by a Date.
	MinYear = -999_999
	// MaxYear is the largest year representable by a Date.
	MaxYear = 999_999
)
