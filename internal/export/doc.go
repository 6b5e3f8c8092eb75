// Package export writes browser resources to disk in their own image format
// and keeps a history of export attempts.
package export
