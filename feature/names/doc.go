// Package names hashes resource names into the 32-bit keys the game
// indexes them by, and renders name/hash lookup tables.
package names
