package ui

// Package ui contains the Fyne-based desktop user interface for the resource
// browser. It wires the search box, the resource list and its context menu to
// the browser handler, and renders export results and settings. All UI strings
// are localized via Localization.
