// Package checker walks a directory tree of markdown files and runs the
// spelling and grammar detectors over each one.
//
// Files are processed one at a time: read fully, reduced to prose for the
// spelling table lookup, and scanned raw for grammar heuristics. A file that
// cannot be read is logged and treated as clean rather than failing the run,
// so I/O trouble under-reports issues instead of aborting a scan.
package checker
