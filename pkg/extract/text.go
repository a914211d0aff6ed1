// Package extract turns source files into plain statement text. Every
// extractor returns text in reading order; all layout interpretation
// happens downstream in the parser.
package extract

import "unicode/utf8"

// DecodeText decodes raw bytes into a string. Valid UTF-8 passes
// through; anything else is read as Latin-1, which maps every byte to a
// rune and so never fails. Bank exports are frequently cp1252.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
