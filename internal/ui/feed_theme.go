package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand colors
var (
	BrandOrange  = color.NRGBA{R: 255, G: 130, B: 0, A: 255}
	LikedRed     = color.NRGBA{R: 230, G: 67, B: 64, A: 255}
	LightSurface = color.NRGBA{R: 247, G: 247, B: 247, A: 255}
	DarkSurface  = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
)

// FeedTheme keeps the stock fonts and icons and overrides accents, surfaces
// and spacing for dense feed rows.
type FeedTheme struct {
	fyne.Theme

	light map[fyne.ThemeColorName]color.Color
	dark  map[fyne.ThemeColorName]color.Color
	sizes map[fyne.ThemeSizeName]float32
}

// NewFeedTheme creates the app theme on top of the default one
func NewFeedTheme() fyne.Theme {
	shared := map[fyne.ThemeColorName]color.Color{
		theme.ColorNamePrimary:   BrandOrange,
		theme.ColorNameFocus:     BrandOrange,
		theme.ColorNameHyperlink: BrandOrange,
		theme.ColorNameError:     LikedRed,
	}
	light := map[fyne.ThemeColorName]color.Color{
		theme.ColorNameBackground: LightSurface,
		theme.ColorNameForeground: color.NRGBA{R: 33, G: 33, B: 33, A: 255},
	}
	dark := map[fyne.ThemeColorName]color.Color{
		theme.ColorNameBackground: DarkSurface,
		theme.ColorNameForeground: color.NRGBA{R: 235, G: 235, B: 235, A: 255},
	}
	for name, c := range shared {
		light[name] = c
		dark[name] = c
	}

	return &FeedTheme{
		Theme: theme.DefaultTheme(),
		light: light,
		dark:  dark,
		sizes: map[fyne.ThemeSizeName]float32{
			theme.SizeNamePadding:         3,
			theme.SizeNameInnerPadding:    6,
			theme.SizeNameLineSpacing:     2,
			theme.SizeNameScrollBar:       6, // touch scrolling is the main input
			theme.SizeNameText:            14,
			theme.SizeNameHeadingText:     18,
			theme.SizeNameCaptionText:     11,
			theme.SizeNameInputRadius:     8,
			theme.SizeNameSelectionRadius: 4,
		},
	}
}

// Color looks up the variant's override, then the default theme
func (t *FeedTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	colors := t.light
	if variant == theme.VariantDark {
		colors = t.dark
	}
	if c, ok := colors[name]; ok {
		return c
	}
	return t.Theme.Color(name, variant)
}

// Size returns the compact sizes
func (t *FeedTheme) Size(name fyne.ThemeSizeName) float32 {
	if s, ok := t.sizes[name]; ok {
		return s
	}
	return t.Theme.Size(name)
}
