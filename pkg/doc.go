// Package pkg provides the core libraries for asciigram image-to-ASCII
// conversion.
//
// # Overview
//
// Asciigram turns a raster image into an ASCII-art rendition and draws that
// text back onto a canvas of the original size. The pkg directory is
// organized by pipeline stage:
//
//  1. [raster] - Image I/O (grayscale decoding, glyph rasterization, encoding)
//  2. [ascii] - The pure transforms (block downsampling, ramp quantization)
//  3. [fonts] - Platform monospaced font resolution
//  4. [pipeline] - Orchestration (decode → downsample → map → render)
//  5. [errors] / [buildinfo] - Shared error codes and version information
//
// # Architecture
//
// The data flow through asciigram:
//
//	Input image file
//	         ↓
//	    [raster] DecodeGray (8-bit grayscale)
//	         ↓
//	    [ascii] Downsample (one 6x12 block per character)
//	         ↓
//	    [ascii] FromGray (ramp quantization to a text grid)
//	         ↓
//	    [raster] Render + Save (glyphs on a canvas of the original size)
//	         ↓
//	Output image file
package pkg
