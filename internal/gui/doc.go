// Package gui implements the desktop bridge: the MCP tools that move and
// click the mouse, type on the keyboard, capture the screen, read text off
// it and manage files on the user's desktop.
//
// Every tool runs one action through a desktop.Controller and answers with
// either a short confirmation sentence or a JSON document. Screenshots are
// downscaled to a maximum width and can carry a red coordinate grid whose
// labels show real screen coordinates, so a model can read a position off
// the image and pass it straight to mouse_click.
package gui
