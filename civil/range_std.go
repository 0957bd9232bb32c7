//go:build !largedates

package civil

// Year bounds for the standard build. Building with the largedates tag widens
// them to ±999999.
const (
	// MinYear is the smallest year representable by a Date.
	MinYear = -9999
	// MaxYear is the largest year representable by a Date.
	MaxYear = 9999
)
