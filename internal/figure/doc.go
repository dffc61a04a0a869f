// Package figure computes Lissajous curves and their derived labels.
//
// The package is the pure core of lissa: given a [Params] snapshot and
// a time window it produces the trail of points the renderer draws,
// plus the reduced frequency [Ratio] and the [Pattern] classification
// shown in the UI.
//
//   - [Params]: one figure description (frequencies, phase, speed, trail)
//   - [Store]: mutex-guarded parameter state shared with the UI
//   - [Sample]: (params, origin, now, count) -> ordered trail points
//   - [Classify]: names the traced shape from ratio and phase
//
// # Sampling Model
//
// Every frame recomputes the full trail from the current parameters and
// the elapsed wall-clock time; no point survives from the previous
// frame. A parameter change therefore takes effect exactly once, at the
// next frame boundary, and never blends curve segments computed under
// different parameters.
package figure
