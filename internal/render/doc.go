// Package render implements the Block Renderer and the Document Assembler.
//
// Assemble drives one generation: it draws the header band, feeds every
// block through the renderer in order, and finishes with a footer pass over
// all pages. The renderer turns each block into draw operations on the
// current page and advances the layout cursor, breaking pages as needed.
//
// Rendering is total. Ragged tables are padded or truncated, unknown palette
// keys fall back to the primary color, and oversized content is clipped
// rather than rejected.
package render
