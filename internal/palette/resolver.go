package palette

import (
	"context"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/logging"
)

// DarkIconsThreshold is the luminance above which dark icons are used
const DarkIconsThreshold = 0.5

// ImageDecoder turns an image reference into pixels
type ImageDecoder interface {
	Decode(ctx context.Context, source string) (image.Image, error)
}

// Result is the color picked for an image and its icon contrast
type Result struct {
	Color     color.NRGBA
	DarkIcons bool
	// FromImage is false when the fallback color was used
	FromImage bool
}

// Resolver picks bar colors from images
type Resolver struct {
	decoder ImageDecoder
	logger  *zap.Logger
}

// NewResolver creates a resolver using decoder for image loading
func NewResolver(decoder ImageDecoder, logger *zap.Logger) *Resolver {
	return &Resolver{
		decoder: decoder,
		logger:  logging.OrNop(logger).Named("palette"),
	}
}

// Resolve decodes source and picks its representative color. It never fails:
// decode errors and empty palettes resolve to fallback.
func (r *Resolver) Resolve(ctx context.Context, source string, fallback color.Color) Result {
	fb := ToNRGBA(fallback)

	img, err := r.decoder.Decode(ctx, source)
	if err != nil {
		r.logger.Debug("image decode failed, using fallback", zap.String("source", source), zap.Error(err))
		return Result{Color: fb, DarkIcons: UseDarkIcons(Luminance(fb))}
	}

	c, ok := SelectColor(Extract(img))
	if !ok {
		c = fb
	}
	return Result{Color: c, DarkIcons: UseDarkIcons(Luminance(c)), FromImage: ok}
}

// SelectColor walks the swatches in priority order: dominant, vibrant, muted,
// light vibrant, light muted, dark vibrant, dark muted
func SelectColor(p Palette) (color.NRGBA, bool) {
	for _, sw := range []*Swatch{
		p.Dominant,
		p.Vibrant,
		p.Muted,
		p.LightVibrant,
		p.LightMuted,
		p.DarkVibrant,
		p.DarkMuted,
	} {
		if sw != nil {
			return sw.Color, true
		}
	}
	return color.NRGBA{}, false
}

// Luminance returns the relative luminance of c in [0, 1]
func Luminance(c color.Color) float64 {
	n := ToNRGBA(c)
	r, g, b := toColorful(n).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// UseDarkIcons reports whether icons over a background of the given
// luminance should be dark
func UseDarkIcons(luminance float64) bool {
	return luminance > DarkIconsThreshold
}

// ToNRGBA converts any color to non-premultiplied 8-bit RGBA
func ToNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Hex formats c as #RRGGBB
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(ToNRGBA(c))
	return cf.Hex()
}
