// Package ase reads and writes Adobe Swatch Exchange (ASE) files, the
// binary palette format used to exchange named colors between design
// tools.
//
// An ASE file is a container of named colors, optionally grouped. The
// package exposes the two top-level operations directly: Encode builds
// a complete file from ordered groups and colors, and Decode parses
// one back, tolerating the non-conformant layouts real-world writers
// produce (name-only groups with trailing colors, spurious padding
// after group terminators).
package ase
