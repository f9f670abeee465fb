// Package buffer implements the line-oriented document model for patina.
//
// Lines are stored as UTF-8 strings. Coordinates are 0-based (Row, Col) where
// Col counts runes, never bytes. Every edit translates Col into a byte offset
// by scanning the line from its start (see ByteOffset), so a multi-byte
// character is always inserted or removed whole.
package buffer
