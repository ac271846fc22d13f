// Package debug provides optional file-based debug logging.
//
// When the WIDARK_DEBUG environment variable is set to a file path, debug
// records are appended to that file as slog text lines. Otherwise, logging
// is a no-op. The terminal is never written to: it belongs to the UI.
package debug
