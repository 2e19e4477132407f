// Package cover scores album cover candidates and synthesizes fallback
// covers from media files.
//
// Discovered cover files are rated purely by filename; the highest-rated
// candidate wins an album. When an album ends the walk with no cover at
// all, a frame is decoded out of the first song that carries a video
// stream (embedded album art included), stride padding is stripped from
// the raw pixels, and the result is written as a small JPEG next to the
// song.
//
// Encoding prefers libvips when it is initialized and falls back to
// pure-Go imaging otherwise.
package cover
