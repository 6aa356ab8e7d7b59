// Package language normalizes user-supplied language codes and renders
// display names for logs and summaries.
package language
