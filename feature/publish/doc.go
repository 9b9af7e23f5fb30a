// Package publish mirrors a local directory of built containers into an
// object-storage bucket. A run first builds a plan by diffing the local
// files (by size and content MD5) against the objects under a bucket
// prefix, then applies the planned uploads and optional prunes once the
// caller has confirmed them. Plans are pure reads; nothing mutates the
// bucket until Apply runs with the confirmation gates open.
package publish
