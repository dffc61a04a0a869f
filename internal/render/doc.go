// Package render turns a sampled trail into drawing commands.
//
// [Renderer] runs a fixed pass order against any [Surface]: clear, the
// optional reference grid, the optional axes, the gradient trail
// stroke, and the leading marker. Coordinates handed to a Surface are
// in the fixed 500x500 reference frame; each implementation maps them
// to its own resolution ([Canvas] to braille dots, the raylib window
// one to one).
package render
