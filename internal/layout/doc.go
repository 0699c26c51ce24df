// Package layout holds the page model shared by the renderer and the
// backends: the Layout Cursor that tracks the vertical write position, the
// primitive draw operations, and the finished Document.
//
// All coordinates are PDF points with the origin at the top-left corner of
// the page and Y growing downwards.
package layout
