// Package abgr provides an 8-bit-per-channel RGBA color value with a
// stable ABGR-packed 32-bit form.
//
// # Overview
//
// abgr is a small value-type library for the GoGPU ecosystem. A Color is
// four bytes (R, G, B, A) that pack into a single uint32 with R in the
// least significant byte and A in the most significant byte, so the packed
// word reads 0xAABBGGRR in hex. The packed form is produced and consumed
// by explicit shifting, never by memory layout, so it is identical on
// every platform.
//
// # Quick Start
//
//	import "github.com/gogpu/abgr"
//
//	// Construct from channel bytes
//	c := abgr.New(212, 120, 27, 255)
//
//	// Or from text
//	c, err := abgr.Parse("212, 120, 27")
//
//	// Packed interchange form
//	p := c.Packed() // 0xFF1B78D4
//
//	// Text form, alpha omitted when fully opaque
//	s := c.String() // "212, 120, 27"
//
// # Construction
//
// Constructors come in three numeric flavors. The byte constructors (New,
// RGB) take values already in range. The int constructors (NewInt, RGBInt)
// silently clamp each component to [0, 255]. The float constructors
// (NewFloat, RGBFloat) map normalized [0, 1] components by truncation to
// the int path, inheriting its clamp. Text parsing (Parse, Hex) is the
// opposite: strict, with out-of-range or malformed input reported as an
// error rather than clamped.
//
// # Interoperability
//
// Color implements the standard color.Color interface, and FromColor and
// Model convert in the other direction, so Color works with the image and
// golang.org/x/image packages directly.
package abgr

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
