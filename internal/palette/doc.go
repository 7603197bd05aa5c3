package palette

// Package palette extracts representative colors from images. Extract builds
// a swatch palette from a pixel buffer; Resolver turns an image reference into
// a single bar color plus an icon-contrast decision, falling back softly when
// the image cannot be decoded.
