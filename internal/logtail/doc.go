// Package logtail reads the tail of the dashboard's log file and parses its
// key=value lines for the activity view.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays proportional to the requested tail rather than the file
// size. Lines come back oldest first. A missing file is not an error: the
// log appears once the first entry is written.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// # Parsing
//
// Parse understands the text formatter output written by the logging
// package:
//
//	time="2025-01-05T10:00:00Z" level=info msg="feed started" component=feed session=…
//
// The well-known keys (time, level, msg, component) become Entry fields and
// everything else lands in Entry.Fields. Quoted values are unescaped. Lines
// in any other shape are passed through untouched in Entry.Raw so the view
// can still show them.
package logtail
