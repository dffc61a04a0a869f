// Package anim owns the frame loop: the start/stop lifecycle, the
// per-refresh sample-and-render tick, and the achieved frame-rate
// estimate. Hosts (the terminal UI, the raylib window, the bench
// command) deliver ticks from their own refresh primitive; the
// [Scheduler] never runs a timer of its own.
package anim
