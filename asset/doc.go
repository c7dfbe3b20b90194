// Package asset loads the textures and font face used by the game.
//
// All loaders read from an fs.FS so the binary can point them at a directory
// on disk while tests supply in-memory files. Every failure is reported as a
// *LoadError; callers treat it as fatal at startup.
package asset
