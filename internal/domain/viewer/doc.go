// Package viewer renders virtual files for the viewer app.
//
// Markdown goes through goldmark (GFM) and a bluemonday UGC policy; any other
// file is highlighted by chroma, picking the lexer from the file name.
package viewer
