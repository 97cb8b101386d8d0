// Package imaging probes, scales and re-encodes raster images.
//
// Decoding goes through image.Decode with JPEG, PNG, GIF, BMP, TIFF and
// WebP decoders registered. Encoding preserves the detected source format;
// decode-only formats (WebP) fail with an explicit error so callers can
// keep the original file.
package imaging
