// Package log provides the global zerolog-based logger with rotating
// file output. Worker subprocesses call Init again so their output
// lands in the same rotating file as the parent.
package log
