// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tsvloader implements the legacy TSV gate loader (spec.md 4.7):
// a small, fast parser chosen as the representative loader for the
// performance and error-handling patterns every file-format loader in
// this library follows (line-buffered reads, a reused grow-only line
// buffer, a digit-only integer scan, and a "file log" of categorized
// diagnostics that survives even a thrown error).
package tsvloader

import (
	"fmt"
	"io"

	"github.com/goki/ki/indent"
)

// LogEntry is one categorized diagnostic recorded during a load
// (spec.md 4.7): category is typically "warning" or "error".
type LogEntry struct {
	Category string
	Message  string
}

// FileLog is an insertion-ordered sequence of LogEntry values. Order
// matters here (spec.md 9) even though most of this library's
// string-keyed lookups don't care about it.
type FileLog struct {
	entries []LogEntry
}

// Append records one diagnostic.
func (l *FileLog) Append(category, message string) {
	l.entries = append(l.entries, LogEntry{Category: category, Message: message})
}

// Entries returns a copy of the recorded diagnostics, in order.
func (l *FileLog) Entries() []LogEntry {
	return append([]LogEntry(nil), l.entries...)
}

// HasCategory reports whether any entry's category equals cat.
func (l *FileLog) HasCategory(cat string) bool {
	for _, e := range l.entries {
		if e.Category == cat {
			return true
		}
	}
	return false
}

// WriteIndented writes each log entry as two lines: the bracketed category,
// then the message indented one tab stop -- the same hand-rolled indentation style
// the teacher's network dump routines use instead of a templating
// library (leabra.NetworkStru.WriteWtsJSON).
func (l *FileLog) WriteIndented(w io.Writer) {
	for _, e := range l.entries {
		fmt.Fprintf(w, "[%s]\n", e.Category)
		w.Write(indent.TabBytes(1))
		fmt.Fprintf(w, "%s\n", e.Message)
	}
}
