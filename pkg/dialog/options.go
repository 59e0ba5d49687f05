package dialog

// DefaultWidth is the outer width used when WithWidth is not given.
const DefaultWidth = 50

// MinWidth is the smallest outer width a dialog renders at.
const MinWidth = 20

// Variant selects the border and title color.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
)

// ParseVariant maps a config name to a Variant. Unknown names map to
// VariantDefault.
func ParseVariant(s string) Variant {
	switch s {
	case "danger":
		return VariantDanger
	case "warning":
		return VariantWarning
	case "info":
		return VariantInfo
	default:
		return VariantDefault
	}
}

// Option configures a Dialog.
type Option func(*Dialog)

// WithTitle sets the title shown in the first row of the frame.
func WithTitle(title string) Option {
	return func(d *Dialog) {
		d.title = title
	}
}

// WithWidth sets the outer width of the dialog.
func WithWidth(w int) Option {
	return func(d *Dialog) {
		if w > 0 {
			d.width = max(w, MinWidth)
		}
	}
}

// WithVariant sets the visual style.
func WithVariant(v Variant) Option {
	return func(d *Dialog) {
		d.variant = v
	}
}

// WithHints shows or hides the keyboard hint line.
func WithHints(show bool) Option {
	return func(d *Dialog) {
		d.showHints = show
	}
}
