// Package probe extracts media metadata by running ffprobe and resolving
// its container and per-stream tag dictionaries into song metadata.
//
// Resolution order for each field: container tags first, then streams in
// order until every field is filled, then the filename (title only), then
// the literal "Unknown". ffprobe is invoked once per file; the indexing
// walk owns the call, request handling never does.
package probe
