// Package preflight checks the input path before trunk performs any I/O on it.
//
// The checks run in two contexts:
//   - The root command calls Require before the initial tail so a missing or
//     unreadable file is reported without partial output.
//   - "trunk config validate --input" prints every Result as a table.
//
// The watch directory check only runs when following, since fsnotify needs to
// list the parent directory to see rename-and-recreate rotation.
package preflight
