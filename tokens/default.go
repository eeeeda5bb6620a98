package tokens

// Default returns the ZeroAI purple/blue palette.
func Default() Theme {
	return Theme{
		Name: "default",
		Colors: Colors{
			Human: HumanColors{
				Primary:         "#2563EB",
				PrimaryLight:    "#3B82F6",
				PrimaryDark:     "#1D4ED8",
				Surface:         "#FFFFFF",
				SurfaceElevated: "#F9FAFB",
				SurfaceSunken:   "#F3F4F6",
				Border:          "#E5E7EB",
				BorderStrong:    "#D1D5DB",
				TextPrimary:     "#111827",
				TextSecondary:   "#6B7280",
				TextTertiary:    "#9CA3AF",
			},
			AI: AIColors{
				Primary:      "#8B5CF6",
				PrimaryLight: "#A78BFA",
				PrimaryDark:  "#7C3AED",
				Glow:         "rgba(102, 126, 234, 0.5)",
				GlowStrong:   "rgba(102, 126, 234, 0.8)",
			},
			Semantic: SemanticColors{
				Success: "#10B981",
				Warning: "#F59E0B",
				Error:   "#EF4444",
				Info:    "#3B82F6",
			},
		},
		Spacing: baseSpacing(),
		FontFamily: FontFamily{
			Base: []string{"-apple-system", "BlinkMacSystemFont", "Segoe UI", "Roboto", "Helvetica Neue", "sans-serif"},
			AI:   []string{"Nunito", "-apple-system", "BlinkMacSystemFont", "sans-serif"},
			Mono: []string{"SF Mono", "Monaco", "Inconsolata", "Fira Code", "monospace"},
		},
		FontSize:     baseFontSize(),
		FontWeight:   baseFontWeight(),
		LineHeight:   baseLineHeight(),
		BorderRadius: baseBorderRadius(),
		BoxShadow: BoxShadow{
			XS:       "0 1px 2px rgba(0, 0, 0, 0.05)",
			SM:       "0 2px 4px rgba(0, 0, 0, 0.1)",
			MD:       "0 4px 6px rgba(0, 0, 0, 0.1)",
			LG:       "0 10px 15px rgba(0, 0, 0, 0.1)",
			XL:       "0 20px 25px rgba(0, 0, 0, 0.15)",
			XXL:      "0 25px 50px rgba(0, 0, 0, 0.25)",
			AI:       "0 0 12px rgba(102, 126, 234, 0.5)",
			AIStrong: "0 0 24px rgba(102, 126, 234, 0.8)",
		},
		Screens:                  baseScreens(),
		TransitionDuration:       baseDuration(),
		TransitionTimingFunction: baseTiming(),
		BackgroundImage: BackgroundImage{
			AIGradient:            "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
			AIGradientLight:       "linear-gradient(135deg, #A78BFA 0%, #C4B5FD 100%)",
			AIGradientDark:        "linear-gradient(135deg, #5B21B6 0%, #6B21A8 100%)",
			CollaborationGradient: "linear-gradient(90deg, #2563EB 0%, #667eea 50%, #764ba2 100%)",
		},
	}
}

// The scales below are shared by every built-in variant; only colors,
// font stacks and shadows are themed.

func baseSpacing() Spacing {
	return Spacing{
		XS:               "4px",
		SM:               "8px",
		MD:               "16px",
		LG:               "24px",
		XL:               "32px",
		XXL:              "48px",
		XXXL:             "64px",
		TouchMin:         TouchMin,
		TouchComfortable: TouchComfortable,
		TouchSpacious:    TouchSpacious,
	}
}

func baseFontSize() FontSize {
	return FontSize{
		XS:   "12px",
		SM:   "14px",
		Base: "16px",
		LG:   "18px",
		XL:   "20px",
		XXL:  "24px",
		XXXL: "30px",
		XXXX: "36px",
	}
}

func baseFontWeight() FontWeight {
	return FontWeight{Normal: "400", Medium: "500", Semibold: "600", Bold: "700"}
}

func baseLineHeight() LineHeight {
	return LineHeight{Tight: "1.25", Normal: "1.5", Relaxed: "1.75"}
}

func baseBorderRadius() BorderRadius {
	return BorderRadius{
		None: "0",
		SM:   "4px",
		MD:   "8px",
		LG:   "12px",
		XL:   "16px",
		XXL:  "24px",
		Full: "9999px",
	}
}

func baseScreens() Screens {
	return Screens{
		XS:  "0px",
		SM:  "640px",
		MD:  "768px",
		LG:  "1024px",
		XL:  "1280px",
		XXL: "1536px",
	}
}

func baseDuration() TransitionDuration {
	return TransitionDuration{Fast: "150ms", Base: "300ms", Slow: "500ms"}
}

func baseTiming() TransitionTimingFunction {
	return TransitionTimingFunction{
		Standard: "cubic-bezier(0.4, 0, 0.2, 1)",
		Enter:    "cubic-bezier(0, 0, 0.2, 1)",
		Exit:     "cubic-bezier(0.4, 0, 1, 1)",
	}
}
