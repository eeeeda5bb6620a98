package tokens

import "errors"

// Validate checks that every required token is present, every value is
// well-formed for its category, the touch spacing matches the touch target
// sizes, and the breakpoints ascend. All problems are returned together.
func Validate(t Theme) error {
	var errs []error

	walkTheme(t, func(e Entry) {
		if e.Value == "" {
			if !e.Optional {
				errs = append(errs, &TokenError{Path: e.Path, Err: ErrMissingToken})
			}
			return
		}
		if err := CheckValue(e.Kind, e.Value); err != nil {
			errs = append(errs, &TokenError{Path: e.Path, Value: e.Value, Err: err})
		}
	})

	touch := []struct {
		path, got, want string
	}{
		{"spacing.touch-min", t.Spacing.TouchMin, TouchMin},
		{"spacing.touch-comfortable", t.Spacing.TouchComfortable, TouchComfortable},
		{"spacing.touch-spacious", t.Spacing.TouchSpacious, TouchSpacious},
	}
	for _, tc := range touch {
		if tc.got != "" && tc.got != tc.want {
			errs = append(errs, &TokenError{Path: tc.path, Value: tc.got, Err: ErrTouchMismatch})
		}
	}

	// Malformed screens are already reported above.
	if bp, err := t.Screens.Config(); err == nil && !bp.ascending() {
		errs = append(errs, &TokenError{Path: "screens", Err: ErrBreakpointOrder})
	}

	return errors.Join(errs...)
}
