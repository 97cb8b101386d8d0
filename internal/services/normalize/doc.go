// Package normalize re-encodes and downsamples images in a working tree.
//
// Every decodable image is re-encoded at the configured quality; images
// exceeding the bounding box are first scaled down preserving aspect ratio.
// The re-encoded candidate replaces the original only when strictly smaller
// in bytes. The comparison is post-encode byte size, never pixel
// dimensions; that is what keeps already-small files from growing.
package normalize
