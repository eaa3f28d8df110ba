// Package source models the inputs trunk can tail.
//
// A File is a seekable, sized source whose observed size is tracked across
// reads so follow mode can deliver only the bytes appended since the last
// observation. A Stdin buffers its lines in memory because standard input
// cannot be seeked. Both implement Source; only File implements Follower.
//
// The last-N-lines start offset for files is found by LocateTailStart, which
// scans backward one byte at a time and never reads the file from the
// beginning.
package source
