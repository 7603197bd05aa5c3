package palette

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Extraction tuning
const (
	// MaxSampleArea bounds the pixel count considered per image
	MaxSampleArea = 112 * 112
	// MaxColors is the number of swatches the quantizer produces
	MaxColors = 16
	// MinAlpha skips translucent pixels
	MinAlpha = 128

	quantizeBits = 5
)

// Scoring weights shared by all targets
const (
	saturationWeight = 0.24
	lightnessWeight  = 0.52
	populationWeight = 0.24
)

// Swatch is a representative color and the number of pixels it stands for
type Swatch struct {
	Color      color.NRGBA
	Population int
}

// Palette holds the quantized swatches and the ones picked for each target.
// A nil target means no swatch qualified.
type Palette struct {
	Swatches     []Swatch
	Dominant     *Swatch
	Vibrant      *Swatch
	Muted        *Swatch
	LightVibrant *Swatch
	LightMuted   *Swatch
	DarkVibrant  *Swatch
	DarkMuted    *Swatch
}

type target struct {
	minS, targetS, maxS float64
	minL, targetL, maxL float64
	slot                func(*Palette) **Swatch
}

// Targets are matched in this order; a swatch serves at most one target.
var targets = []target{
	{0.35, 1, 1, 0.55, 0.74, 1, func(p *Palette) **Swatch { return &p.LightVibrant }},
	{0.35, 1, 1, 0.3, 0.5, 0.7, func(p *Palette) **Swatch { return &p.Vibrant }},
	{0.35, 1, 1, 0, 0.26, 0.45, func(p *Palette) **Swatch { return &p.DarkVibrant }},
	{0, 0.3, 0.4, 0.55, 0.74, 1, func(p *Palette) **Swatch { return &p.LightMuted }},
	{0, 0.3, 0.4, 0.3, 0.5, 0.7, func(p *Palette) **Swatch { return &p.Muted }},
	{0, 0.3, 0.4, 0, 0.26, 0.45, func(p *Palette) **Swatch { return &p.DarkMuted }},
}

// Extract builds a palette from img
func Extract(img image.Image) Palette {
	hist := histogram(sample(img))
	swatches := quantize(hist, MaxColors)

	p := Palette{Swatches: swatches}
	if len(swatches) == 0 {
		return p
	}

	maxPop := 0
	for i := range swatches {
		if swatches[i].Population > maxPop {
			maxPop = swatches[i].Population
			p.Dominant = &swatches[i]
		}
	}

	used := make(map[int]bool)
	for _, t := range targets {
		best, bestScore := -1, math.Inf(-1)
		for i, sw := range swatches {
			if used[i] {
				continue
			}
			_, s, l := toColorful(sw.Color).Hsl()
			if s < t.minS || s > t.maxS || l < t.minL || l > t.maxL {
				continue
			}
			score := saturationWeight*(1-math.Abs(s-t.targetS)) +
				lightnessWeight*(1-math.Abs(l-t.targetL)) +
				populationWeight*float64(sw.Population)/float64(maxPop)
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best >= 0 {
			used[best] = true
			*t.slot(&p) = &swatches[best]
		}
	}
	return p
}

// sample scales img down so that its area does not exceed MaxSampleArea
func sample(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	if area := w * h; area <= MaxSampleArea {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}

	scale := math.Sqrt(float64(MaxSampleArea) / float64(w*h))
	w = int(math.Max(1, math.Floor(float64(w)*scale)))
	h = int(math.Max(1, math.Floor(float64(h)*scale)))

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

type bucket struct {
	key   uint16
	count int
}

func histogram(img *image.NRGBA) []bucket {
	counts := make(map[uint16]int)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i+3] < MinAlpha {
			continue
		}
		key := pack(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		counts[key]++
	}

	hist := make([]bucket, 0, len(counts))
	for key, count := range counts {
		if ignored(unpack(key)) {
			continue
		}
		hist = append(hist, bucket{key: key, count: count})
	}
	sort.Slice(hist, func(i, j int) bool { return hist[i].key < hist[j].key })
	return hist
}

// ignored drops near-black, near-white and skin-tone-line colors, which make
// poor bar colors
func ignored(c color.NRGBA) bool {
	h, s, l := toColorful(c).Hsl()
	if l <= 0.05 || l >= 0.95 {
		return true
	}
	return h >= 10 && h <= 37 && s <= 0.82
}

func pack(r, g, b uint8) uint16 {
	shift := 8 - quantizeBits
	return uint16(r>>shift)<<(2*quantizeBits) | uint16(g>>shift)<<quantizeBits | uint16(b>>shift)
}

func channel(key uint16, dim int) int {
	mask := uint16(1<<quantizeBits - 1)
	return int(key >> (uint(2-dim) * quantizeBits) & mask)
}

func expand(v int) uint8 {
	return uint8(v<<(8-quantizeBits) | v>>(2*quantizeBits-8))
}

func unpack(key uint16) color.NRGBA {
	return color.NRGBA{R: expand(channel(key, 0)), G: expand(channel(key, 1)), B: expand(channel(key, 2)), A: 0xff}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
