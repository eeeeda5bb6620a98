// Package tokens defines the ZeroAI-UI design token table.
//
// A Theme is a typed structure with one field per token, grouped by
// category. Token names come from the json struct tag of each field, so a
// misspelled token is a compile error in Go code and a decode error in a
// theme file. Fields tagged omitempty are optional extension points that a
// variant may leave empty.
package tokens

// Touch target sizes shared by the spacing table and the touch-target
// utilities. Both must stay numerically equal.
const (
	TouchMin         = "48px"
	TouchComfortable = "56px"
	TouchSpacious    = "64px"
)

// Theme is one complete variant of the token table.
type Theme struct {
	// Name identifies the variant ("default", "taobao", or a theme file name).
	Name string `json:"-" toml:"-"`

	Colors                   Colors                   `json:"colors" toml:"colors"`
	Spacing                  Spacing                  `json:"spacing" toml:"spacing"`
	FontFamily               FontFamily               `json:"fontFamily" toml:"fontFamily"`
	FontSize                 FontSize                 `json:"fontSize" toml:"fontSize"`
	FontWeight               FontWeight               `json:"fontWeight" toml:"fontWeight"`
	LineHeight               LineHeight               `json:"lineHeight" toml:"lineHeight"`
	BorderRadius             BorderRadius             `json:"borderRadius" toml:"borderRadius"`
	BoxShadow                BoxShadow                `json:"boxShadow" toml:"boxShadow"`
	Screens                  Screens                  `json:"screens" toml:"screens"`
	TransitionDuration       TransitionDuration       `json:"transitionDuration" toml:"transitionDuration"`
	TransitionTimingFunction TransitionTimingFunction `json:"transitionTimingFunction" toml:"transitionTimingFunction"`
	BackgroundImage          BackgroundImage          `json:"backgroundImage,omitempty" toml:"backgroundImage,omitempty"`
}

// Colors groups the three color layers.
type Colors struct {
	Human    HumanColors    `json:"human" toml:"human"`
	AI       AIColors       `json:"ai" toml:"ai"`
	Semantic SemanticColors `json:"semantic" toml:"semantic"`
}

// HumanColors is the layer used for human-authored content and chrome.
type HumanColors struct {
	Primary         string `json:"primary" toml:"primary"`
	PrimaryLight    string `json:"primary-light" toml:"primary-light"`
	PrimaryDark     string `json:"primary-dark" toml:"primary-dark"`
	Surface         string `json:"surface" toml:"surface"`
	SurfaceElevated string `json:"surface-elevated" toml:"surface-elevated"`
	SurfaceSunken   string `json:"surface-sunken" toml:"surface-sunken"`
	Border          string `json:"border" toml:"border"`
	BorderStrong    string `json:"border-strong" toml:"border-strong"`
	TextPrimary     string `json:"text-primary" toml:"text-primary"`
	TextSecondary   string `json:"text-secondary" toml:"text-secondary"`
	TextTertiary    string `json:"text-tertiary" toml:"text-tertiary"`
}

// AIColors is the layer used for AI-generated content.
type AIColors struct {
	Primary      string `json:"primary" toml:"primary"`
	PrimaryLight string `json:"primary-light" toml:"primary-light"`
	PrimaryDark  string `json:"primary-dark" toml:"primary-dark"`
	Glow         string `json:"glow,omitempty" toml:"glow,omitempty"`
	GlowStrong   string `json:"glow-strong,omitempty" toml:"glow-strong,omitempty"`
	Surface      string `json:"surface,omitempty" toml:"surface,omitempty"`
}

type SemanticColors struct {
	Success string `json:"success" toml:"success"`
	Warning string `json:"warning" toml:"warning"`
	Error   string `json:"error" toml:"error"`
	Info    string `json:"info" toml:"info"`
}

type Spacing struct {
	XS               string `json:"xs" toml:"xs"`
	SM               string `json:"sm" toml:"sm"`
	MD               string `json:"md" toml:"md"`
	LG               string `json:"lg" toml:"lg"`
	XL               string `json:"xl" toml:"xl"`
	XXL              string `json:"2xl" toml:"2xl"`
	XXXL             string `json:"3xl" toml:"3xl"`
	TouchMin         string `json:"touch-min" toml:"touch-min"`
	TouchComfortable string `json:"touch-comfortable" toml:"touch-comfortable"`
	TouchSpacious    string `json:"touch-spacious" toml:"touch-spacious"`
}

// FontFamily holds ordered fallback lists, most preferred first.
type FontFamily struct {
	Base []string `json:"base" toml:"base"`
	AI   []string `json:"ai" toml:"ai"`
	Mono []string `json:"mono" toml:"mono"`
}

type FontSize struct {
	XS   string `json:"xs" toml:"xs"`
	SM   string `json:"sm" toml:"sm"`
	Base string `json:"base" toml:"base"`
	LG   string `json:"lg" toml:"lg"`
	XL   string `json:"xl" toml:"xl"`
	XXL  string `json:"2xl" toml:"2xl"`
	XXXL string `json:"3xl" toml:"3xl"`
	XXXX string `json:"4xl" toml:"4xl"`
}

type FontWeight struct {
	Normal   string `json:"normal" toml:"normal"`
	Medium   string `json:"medium" toml:"medium"`
	Semibold string `json:"semibold" toml:"semibold"`
	Bold     string `json:"bold" toml:"bold"`
}

type LineHeight struct {
	Tight   string `json:"tight" toml:"tight"`
	Normal  string `json:"normal" toml:"normal"`
	Relaxed string `json:"relaxed" toml:"relaxed"`
}

type BorderRadius struct {
	None string `json:"none" toml:"none"`
	SM   string `json:"sm" toml:"sm"`
	MD   string `json:"md" toml:"md"`
	LG   string `json:"lg" toml:"lg"`
	XL   string `json:"xl" toml:"xl"`
	XXL  string `json:"2xl" toml:"2xl"`
	Full string `json:"full" toml:"full"`
}

type BoxShadow struct {
	XS       string `json:"xs" toml:"xs"`
	SM       string `json:"sm" toml:"sm"`
	MD       string `json:"md" toml:"md"`
	LG       string `json:"lg" toml:"lg"`
	XL       string `json:"xl" toml:"xl"`
	XXL      string `json:"2xl" toml:"2xl"`
	AI       string `json:"ai" toml:"ai"`
	AIStrong string `json:"ai-strong" toml:"ai-strong"`
}

// Screens holds the minimum viewport width of each breakpoint.
type Screens struct {
	XS  string `json:"xs" toml:"xs"`
	SM  string `json:"sm" toml:"sm"`
	MD  string `json:"md" toml:"md"`
	LG  string `json:"lg" toml:"lg"`
	XL  string `json:"xl" toml:"xl"`
	XXL string `json:"2xl" toml:"2xl"`
}

type TransitionDuration struct {
	Fast string `json:"fast" toml:"fast"`
	Base string `json:"base" toml:"base"`
	Slow string `json:"slow" toml:"slow"`
}

type TransitionTimingFunction struct {
	Standard string `json:"standard" toml:"standard"`
	Enter    string `json:"enter" toml:"enter"`
	Exit     string `json:"exit" toml:"exit"`
}

// BackgroundImage holds gradient tokens. Every entry is optional.
type BackgroundImage struct {
	AIGradient            string `json:"ai-gradient,omitempty" toml:"ai-gradient,omitempty"`
	AIGradientLight       string `json:"ai-gradient-light,omitempty" toml:"ai-gradient-light,omitempty"`
	AIGradientDark        string `json:"ai-gradient-dark,omitempty" toml:"ai-gradient-dark,omitempty"`
	CollaborationGradient string `json:"collaboration-gradient,omitempty" toml:"collaboration-gradient,omitempty"`
}
