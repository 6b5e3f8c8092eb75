package catalog

// Package catalog turns a resource namespace into the browser's display list
// and filters it. Filtering never mutates the display list; it produces a view
// of source indexes that the UI maps selections through.
