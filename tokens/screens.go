package tokens

import "fmt"

// Breakpoint represents a responsive breakpoint from the screens table.
type Breakpoint int

const (
	BreakpointXS  Breakpoint = iota // ≥0px
	BreakpointSM                    // ≥640px
	BreakpointMD                    // ≥768px
	BreakpointLG                    // ≥1024px
	BreakpointXL                    // ≥1280px
	Breakpoint2XL                   // ≥1536px
)

var breakpointNames = [...]string{"xs", "sm", "md", "lg", "xl", "2xl"}

func (b Breakpoint) String() string {
	if b >= 0 && int(b) < len(breakpointNames) {
		return breakpointNames[b]
	}
	return fmt.Sprintf("Breakpoint(%d)", int(b))
}

// ParseBreakpoint converts a screens token name to a Breakpoint.
func ParseBreakpoint(name string) (Breakpoint, error) {
	for i, n := range breakpointNames {
		if n == name {
			return Breakpoint(i), nil
		}
	}
	return 0, fmt.Errorf("%w: screens.%s", ErrUnknownToken, name)
}

// BreakpointConfig holds the pixel thresholds of the screens table.
// Tailwind is mobile-first: a breakpoint applies at its width and above.
type BreakpointConfig struct {
	XS  float64
	SM  float64
	MD  float64
	LG  float64
	XL  float64
	XXL float64
}

// Config parses the screens table into pixel thresholds.
func (s Screens) Config() (BreakpointConfig, error) {
	var (
		c   BreakpointConfig
		err error
	)
	fields := []struct {
		name  string
		value string
		dst   *float64
	}{
		{"xs", s.XS, &c.XS},
		{"sm", s.SM, &c.SM},
		{"md", s.MD, &c.MD},
		{"lg", s.LG, &c.LG},
		{"xl", s.XL, &c.XL},
		{"2xl", s.XXL, &c.XXL},
	}
	for _, f := range fields {
		if *f.dst, err = ParsePixels(f.value); err != nil {
			return BreakpointConfig{}, &TokenError{Path: "screens." + f.name, Value: f.value, Err: err}
		}
	}
	return c, nil
}

// thresholds returns the widths in breakpoint order.
func (c BreakpointConfig) thresholds() []float64 {
	return []float64{c.XS, c.SM, c.MD, c.LG, c.XL, c.XXL}
}

// Width returns the minimum width of a breakpoint.
func (c BreakpointConfig) Width(b Breakpoint) float64 {
	t := c.thresholds()
	if b < 0 || int(b) >= len(t) {
		return 0
	}
	return t[b]
}

// Active returns the highest breakpoint the given viewport width satisfies.
func (c BreakpointConfig) Active(width float64) Breakpoint {
	if width >= c.XXL {
		return Breakpoint2XL
	}
	if width >= c.XL {
		return BreakpointXL
	}
	if width >= c.LG {
		return BreakpointLG
	}
	if width >= c.MD {
		return BreakpointMD
	}
	if width >= c.SM {
		return BreakpointSM
	}
	return BreakpointXS
}

// ascending reports whether every threshold is larger than the previous.
func (c BreakpointConfig) ascending() bool {
	t := c.thresholds()
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return false
		}
	}
	return true
}
