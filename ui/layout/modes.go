// Package layout computes the geometry of the tag board: terminal breakpoints,
// column widths, and the one-line tag overflow layout with its "+N" indicator.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for large terminals (>= 140w x 40h).
	LayoutFull LayoutMode = iota

	// LayoutStandard is for medium terminals (>= 100w x 24h).
	LayoutStandard

	// LayoutCompact is for small terminals (>= 60w x 10h).
	// Narrow name column, chips without padding.
	LayoutCompact

	// LayoutMinimal is for terminals below minimum size.
	// Names are stacked above their tags.
	LayoutMinimal
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode returns the more restrictive of the width and height modes.
func DetermineMode(width, height int) LayoutMode {
	if width < MinWidth || height < MinHeight {
		return LayoutMinimal
	}

	widthMode := modeFor(width, FullWidth, StandardWidth, MinWidth)
	heightMode := modeFor(height, FullHeight, StandardHeight, MinHeight)

	// Higher value = more restrictive
	if widthMode > heightMode {
		return widthMode
	}
	return heightMode
}

func modeFor(v, full, standard, minimum int) LayoutMode {
	switch {
	case v >= full:
		return LayoutFull
	case v >= standard:
		return LayoutStandard
	case v >= minimum:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}
