// Package pipeline implements the Markdown Normalizer: the stage that turns
// raw text into the ordered block sequence consumed by the renderer.
//
// The stage runs in two steps:
//   - Preprocessing (byte order mark, line endings, NFC composition)
//   - Line scanning into blocks, with inline spans parsed by a restricted
//     goldmark parser (code spans and strong emphasis only)
//
// Normalization is total: any input yields a block sequence, and constructs
// that do not match the supported subset fall back to plain paragraphs.
package pipeline
