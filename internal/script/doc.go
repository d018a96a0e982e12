// Package script turns a flat stream of script lines into speaker-attributed
// speeches and answers statistics and text queries over them.
//
// Segment walks the lines once, asking a pluggable Detector whether each line
// opens a new speech. The resulting Speech values are immutable and compare
// structurally. Play indexes speeches by speaker and memoizes its queries in
// a cache owned by the Play itself; the cache is safe for concurrent callers
// and is dropped whenever the speech sequence is replaced.
package script
