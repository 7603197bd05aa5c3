package palette

import (
	"image/color"
	"sort"
)

// box is a range of histogram buckets in the median cut
type box struct {
	buckets []bucket
	min     [3]int
	max     [3]int
	count   int
}

func newBox(buckets []bucket) *box {
	b := &box{buckets: buckets}
	b.min = [3]int{1 << quantizeBits, 1 << quantizeBits, 1 << quantizeBits}
	for _, bk := range buckets {
		for d := 0; d < 3; d++ {
			v := channel(bk.key, d)
			if v < b.min[d] {
				b.min[d] = v
			}
			if v > b.max[d] {
				b.max[d] = v
			}
		}
		b.count += bk.count
	}
	return b
}

func (b *box) volume() int {
	return (b.max[0] - b.min[0] + 1) * (b.max[1] - b.min[1] + 1) * (b.max[2] - b.min[2] + 1)
}

func (b *box) longestDim() int {
	best, span := 0, -1
	for d := 0; d < 3; d++ {
		if s := b.max[d] - b.min[d]; s > span {
			best, span = d, s
		}
	}
	return best
}

// split cuts the box at the population median along its longest side
func (b *box) split() (*box, *box) {
	dim := b.longestDim()
	sort.SliceStable(b.buckets, func(i, j int) bool {
		return channel(b.buckets[i].key, dim) < channel(b.buckets[j].key, dim)
	})

	half, seen := b.count/2, 0
	cut := 1
	for i, bk := range b.buckets {
		seen += bk.count
		if seen >= half {
			cut = i + 1
			break
		}
	}
	if cut >= len(b.buckets) {
		cut = len(b.buckets) - 1
	}
	return newBox(b.buckets[:cut]), newBox(b.buckets[cut:])
}

func (b *box) swatch() Swatch {
	var r, g, bl int
	for _, bk := range b.buckets {
		c := unpack(bk.key)
		r += int(c.R) * bk.count
		g += int(c.G) * bk.count
		bl += int(c.B) * bk.count
	}
	n := b.count
	return Swatch{
		Population: n,
		Color: color.NRGBA{
			R: uint8((r + n/2) / n),
			G: uint8((g + n/2) / n),
			B: uint8((bl + n/2) / n),
			A: 0xff,
		},
	}
}

// quantize reduces the histogram to at most maxColors swatches
func quantize(hist []bucket, maxColors int) []Swatch {
	if len(hist) == 0 {
		return nil
	}
	if len(hist) <= maxColors {
		swatches := make([]Swatch, len(hist))
		for i, bk := range hist {
			swatches[i] = Swatch{Color: unpack(bk.key), Population: bk.count}
		}
		return swatches
	}

	boxes := []*box{newBox(hist)}
	for len(boxes) < maxColors {
		idx := -1
		for i, b := range boxes {
			if len(b.buckets) < 2 {
				continue
			}
			if idx < 0 || b.volume() > boxes[idx].volume() {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		left, right := boxes[idx].split()
		boxes[idx] = left
		boxes = append(boxes, right)
	}

	swatches := make([]Swatch, 0, len(boxes))
	for _, b := range boxes {
		swatches = append(swatches, b.swatch())
	}
	return swatches
}
