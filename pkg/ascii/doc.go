// Package ascii implements the grayscale-to-character transforms.
//
// The conversion happens in two pure steps: Downsample shrinks a grayscale
// image by a fixed block factor (one block becomes one character cell), and
// FromGray quantizes each downsampled pixel against a character ramp to
// produce an immutable text grid. Both steps are deterministic and hold no
// state, so callers can chain them freely and test them in isolation.
package ascii
