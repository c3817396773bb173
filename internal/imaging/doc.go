// Package imaging prepares screen captures for MCP clients and generates the
// small raster assets the editor bridge writes locally.
//
// Screen captures are large and clients pay for every byte of base64, so the
// package provides the steps that shrink them: conversion to opaque RGB,
// width-bounded Lanczos downscaling, JPEG encoding at a caller-chosen quality
// and an optional coordinate grid whose labels carry the real (unscaled)
// screen coordinates.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. When an image has been
// downscaled, a scale factor of original width / scaled width maps a pixel in
// the scaled image back to the screen:
//
//	realX = int(scaledX * scaleFactor)
//
// # Color Representation
//
// Colors are reported as:
//   - Hex: "#RRGGBB" (upper case, alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
package imaging
