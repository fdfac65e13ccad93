// Package vecfile reads and writes embedding matrices as flat binary
// files. The build pipeline caches computed vectors on disk so that a
// re-run against an unchanged corpus skips the expensive provider calls.
//
// The format is a fixed header (magic, row count, dimension) followed by
// row*dimension little-endian float32 values. Writes go through a temp
// file and rename, so a crashed build never leaves a truncated cache.
package vecfile
