package platform

// Package platform contains OS integration glue: default directories, the
// system clipboard for headless use, and revealing exported files in the
// OS file manager.
