// Package rush turns a directory of raw forum thread dumps into an
// indexable corpus of structured posts.
//
// Files are ordered oldest-modified first so every file has a stable
// integer position across process restarts. Each file's HTML is parsed
// into posts (author, date, markdown body) and the result is memoized by
// a digest of the raw content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, fs/).
package rush
