// Package mogger prints leveled, timestamped messages to the console.
//
// A Mogger renders each call as a single line:
//
//	[Warning] [14:07 05/03/2024] disk nearly full
//
// The level prefix is colored (Info white, Warning yellow, Error red,
// Debug uncolored) and followed by a color reset. Either prefix can be
// switched off through Config.
//
// # Basic Usage
//
// Build a handle and pass it around:
//
//	l := mogger.Default()
//	l.Warning("disk nearly full")
//
// Or install one logger for the whole process at startup:
//
//	mogger.InitDefault()
//	mogger.Log(mogger.LevelInfo, "ready")
//
// The process-wide registry is write-once. A second Init panics with
// ErrAlreadyInitialized; use Install to get the error instead.
package mogger
