package tokens

// Taobao returns the Taobao orange palette. It defines an AI surface color
// instead of glows and carries no gradients.
func Taobao() Theme {
	return Theme{
		Name: "taobao",
		Colors: Colors{
			Human: HumanColors{
				Primary:         "#FF5000",
				PrimaryLight:    "#FF7A45",
				PrimaryDark:     "#E04400",
				Surface:         "#FFFFFF",
				SurfaceElevated: "#FFF7F2",
				SurfaceSunken:   "#F5F5F5",
				Border:          "#EEEEEE",
				BorderStrong:    "#DDDDDD",
				TextPrimary:     "#1F1F1F",
				TextSecondary:   "#666666",
				TextTertiary:    "#999999",
			},
			AI: AIColors{
				Primary:      "#FF6600",
				PrimaryLight: "#FF8533",
				PrimaryDark:  "#E65C00",
				Surface:      "#FFF3EB",
			},
			Semantic: SemanticColors{
				Success: "#00B578",
				Warning: "#FF8F1F",
				Error:   "#FF3141",
				Info:    "#1677FF",
			},
		},
		Spacing: baseSpacing(),
		FontFamily: FontFamily{
			Base: []string{"PingFang SC", "-apple-system", "BlinkMacSystemFont", "Helvetica Neue", "Microsoft YaHei", "sans-serif"},
			AI:   []string{"PingFang SC", "-apple-system", "BlinkMacSystemFont", "sans-serif"},
			Mono: []string{"SF Mono", "Menlo", "Consolas", "monospace"},
		},
		FontSize:     baseFontSize(),
		FontWeight:   baseFontWeight(),
		LineHeight:   baseLineHeight(),
		BorderRadius: baseBorderRadius(),
		BoxShadow: BoxShadow{
			XS:       "0 1px 2px rgba(0, 0, 0, 0.05)",
			SM:       "0 2px 4px rgba(0, 0, 0, 0.08)",
			MD:       "0 4px 6px rgba(0, 0, 0, 0.08)",
			LG:       "0 10px 15px rgba(0, 0, 0, 0.1)",
			XL:       "0 20px 25px rgba(0, 0, 0, 0.12)",
			XXL:      "0 25px 50px rgba(0, 0, 0, 0.2)",
			AI:       "0 0 12px rgba(255, 102, 0, 0.35)",
			AIStrong: "0 0 24px rgba(255, 102, 0, 0.5)",
		},
		Screens:                  baseScreens(),
		TransitionDuration:       baseDuration(),
		TransitionTimingFunction: baseTiming(),
	}
}
