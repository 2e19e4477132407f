// Package catalog holds the in-memory music catalog: the shared graph of
// artists, albums, and songs built during the indexing walk and served
// read-only afterward.
//
// Artists and albums are keyed by a sanitized unique name. Two distinct
// display names that sanitize to the same slug are disambiguated with
// numeric suffixes (-1, -2, ...), and re-inserting an already-seen exact
// name is idempotent. Albums hold their songs twice: once in a sparse,
// track-indexed slice and once in a by-name map; both refer to the same
// shared Song.
//
// Every entity carries its own RWMutex. Mutation happens one entity at a
// time, never under more than one lock, so the artist/album back-reference
// cycle cannot deadlock and concurrent readers never contend across
// entities.
package catalog
