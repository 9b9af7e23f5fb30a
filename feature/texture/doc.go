// Package texture implements the texture dictionary feature.
//
// A texture dictionary is an ordered container of named textures stored
// in the binary section framing of core/rwstream. The package models
// the container, merges two of them with name-based deduplication, and
// codes the on-disk form.
//
// # Merge Semantics
//
// Merge keeps every entry of the base dictionary and appends the
// overlay entries whose names the base does not already hold. The base
// copy of a colliding name always wins, and the relative order of both
// inputs is preserved. Names compare as exact bytes. Lookups are linear
// scans; dictionaries hold at most a few hundred textures.
//
// # On-Disk Form
//
// A dictionary is a Texture Dictionary section holding a 4-byte Struct
// (entry count and device id), one Texture Native section per entry,
// and a trailing empty Extension. Texture payloads are carried verbatim
// from read to write; only the fixed name fields inside them are
// interpreted, so a container survives a read/write cycle byte for
// byte. Files cut off right after the last texture still read.
//
// # Components
//
//   - Dictionary, Entry: the in-memory model.
//   - Merge: combines two dictionaries.
//   - Read, Write: the codec.
//   - Service: file-level operations for the CLI (load, save, merge).
package texture
