// Package indexer builds the music catalog from the media directory.
//
// The indexer performs one ordered, depth-first walk over the configured
// directory at startup. Every file is classified by the media and cover
// pattern sets:
//   - Media files are probed for container and stream metadata, then
//     inserted into the catalog as songs.
//   - Cover image files are correlated with albums by directory
//     proximity: a cover seen after a song in the same directory attaches
//     immediately, a cover seen first is buffered until a song from its
//     directory arrives, and the buffer resets when the walk moves on.
//
// After the walk, albums still without artwork get a second chance: the
// indexer decodes an embedded video frame (usually attached picture art)
// from one of the album's songs and writes a small JPEG next to it. This
// pass runs with bounded parallelism since each generation shells out to
// ffmpeg.
//
// The walk itself is strictly sequential. Cover correlation depends on
// visit order, so no part of it is parallelized. Symbolic links are
// followed, both for the root directory and for links inside the tree.
//
// Unreadable paths and files that fail probing are logged, counted, and
// skipped; a broken file never aborts the run.
package indexer
