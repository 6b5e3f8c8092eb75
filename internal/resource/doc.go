package resource

// Package resource exposes read-only resource namespaces to the browser. A
// Provider lists every leaf of its namespace as a (path, bytes) pair; the
// catalog package decides which of those are shown.
