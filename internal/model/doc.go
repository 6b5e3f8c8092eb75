package model

// Package model defines domain data structures used across the app: resource
// entries shown in the browser list, export task records, and status enums.
// Structures are immutable once handed to the UI except for task state, which
// only the export service mutates.
