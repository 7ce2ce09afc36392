// Package pdf holds state shared by the dossier rendering engine.
//
// The engine itself lives in the sub-packages:
//
//   - fonts: sfnt parsing, font cache and per-document glyph subsets
//   - text: measuring and wrapping text
//   - content: content stream operators
//   - generic: the PDF object model
//   - writer: serialization of the final object graph
//   - composer: the page/cursor drawing API used to build dossiers
package pdf
