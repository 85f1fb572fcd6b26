package domain

import (
	"encoding/json"
	"fmt"
)

// TextColor is the foreground color chosen for legibility over a site card.
type TextColor string

const (
	TextBlack TextColor = "black"
	TextWhite TextColor = "white"
)

// Valid reports whether c is one of the two supported text colors.
func (c TextColor) Valid() bool {
	return c == TextBlack || c == TextWhite
}

// ColorKind tags which background source a site carries.
type ColorKind int

const (
	// ColorNone is the zero value; a stored site never keeps it.
	ColorNone ColorKind = iota
	// ColorBuiltInClass references a predefined style (catalog sites only).
	ColorBuiltInClass
	// ColorGradient is a computed two-stop CSS gradient.
	ColorGradient
	// ColorSolidHex is a user-chosen hex color.
	ColorSolidHex
)

func (k ColorKind) String() string {
	switch k {
	case ColorBuiltInClass:
		return "class"
	case ColorGradient:
		return "gradient"
	case ColorSolidHex:
		return "solid"
	default:
		return "none"
	}
}

// ColorSource is the background of a site card. Exactly one kind is set,
// so a site can never carry a gradient and a custom color at once.
type ColorSource struct {
	Kind  ColorKind
	Value string
}

func BuiltInClass(class string) ColorSource { return ColorSource{Kind: ColorBuiltInClass, Value: class} }
func Gradient(css string) ColorSource       { return ColorSource{Kind: ColorGradient, Value: css} }
func SolidHex(hex string) ColorSource       { return ColorSource{Kind: ColorSolidHex, Value: hex} }

// Site represents one launchable shortcut.
//
// A Site is uniquely identified by its URL across the custom list and the
// built-in catalog.
type Site struct {
	// Name is the display string, never blank once stored.
	Name string

	// URL is the normalized absolute URL (see NormalizeURL).
	URL string

	// Color is the card background.
	Color ColorSource

	// TextColor is always derivable from Color, never edited directly.
	TextColor TextColor
}

// siteJSON is the persisted shape. Field names match what browser
// clients of the launcher already store; textColor values do not.
type siteJSON struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Color       string    `json:"color,omitempty"`
	Gradient    string    `json:"gradient,omitempty"`
	CustomColor string    `json:"customColor,omitempty"`
	TextColor   TextColor `json:"textColor"`
}

// MarshalJSON writes exactly one of color, gradient or customColor.
func (s Site) MarshalJSON() ([]byte, error) {
	out := siteJSON{Name: s.Name, URL: s.URL, TextColor: s.TextColor}
	switch s.Color.Kind {
	case ColorBuiltInClass:
		out.Color = s.Color.Value
	case ColorGradient:
		out.Gradient = s.Color.Value
	case ColorSolidHex:
		out.CustomColor = s.Color.Value
	}
	return json.Marshal(out)
}

// UnmarshalJSON picks a single color source (customColor, then gradient,
// then color) and re-derives the text color when it is missing or unknown.
func (s *Site) UnmarshalJSON(data []byte) error {
	var in siteJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("failed to decode site: %w", err)
	}

	s.Name = in.Name
	s.URL = in.URL
	s.TextColor = in.TextColor

	switch {
	case in.CustomColor != "":
		s.Color = SolidHex(in.CustomColor)
		if !s.TextColor.Valid() {
			s.TextColor = ContrastFor(in.CustomColor)
		}
	case in.Gradient != "":
		s.Color = Gradient(in.Gradient)
		if !s.TextColor.Valid() {
			_, s.TextColor = ColorFromURL(in.URL)
		}
	case in.Color != "":
		s.Color = BuiltInClass(in.Color)
		if !s.TextColor.Valid() {
			s.TextColor = TextWhite
		}
	default:
		s.Color, s.TextColor = autoColor(in.URL)
	}
	return nil
}

// NewCustomSite builds a custom site with a gradient derived from its URL.
func NewCustomSite(name, normalizedURL string) Site {
	color, text := autoColor(normalizedURL)
	return Site{Name: name, URL: normalizedURL, Color: color, TextColor: text}
}

// WithSolidColor returns a copy of s painted with a user-chosen hex color.
func (s Site) WithSolidColor(hex string) Site {
	s.Color = SolidHex(hex)
	s.TextColor = ContrastFor(hex)
	return s
}

func autoColor(normalizedURL string) (ColorSource, TextColor) {
	gradient, text := ColorFromURL(normalizedURL)
	return Gradient(gradient), text
}
