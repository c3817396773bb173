// Package desktop drives the local GUI for the desktop bridge.
//
// A Driver performs raw input and screen capture; the robotgo driver is used
// in cgo builds and every other build reports ErrUnsupported. Controller
// wraps a Driver with timed cursor moves, typing intervals and the corner
// fail-safe, and serializes actions so only one runs at a time.
//
// Files exposes the desktop directory: listing, searching and deleting
// regular files, with deletion confined to that directory.
package desktop
