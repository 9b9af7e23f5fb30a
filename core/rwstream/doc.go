// Package rwstream reads and writes the binary section framing of
// RenderWare stream files.
//
// A stream is a tree of sections. Every section starts with a 12-byte
// little-endian header (type, payload size, library version stamp);
// child sections are laid out inside the payload of their parent. The
// package only handles the framing: what a payload means is up to the
// caller.
//
// # Usage
//
//	h, err := rwstream.ReadExpected(r, rwstream.SectionTexDictionary)
//	payload, err := rwstream.ReadPayload(r, h)
package rwstream
