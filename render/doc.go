// Package render implements the drawing sink the game writes to each frame.
//
// Two sinks share the Renderer interface: TerminalRenderer paints the
// 640x480 playfield onto a tcell screen using half-block subpixels, and
// ImageRenderer composites into an RGBA bitmap for screenshots and tests.
package render
