// Package collision collects per-model collision files into combined
// archives.
//
// Collision archives are plain concatenations: the game's loader scans
// the stream for embedded headers, so collecting a folder is appending
// every .col file in it to one output, in lexical order. The content of
// the files is never interpreted.
package collision
