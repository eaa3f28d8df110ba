// Package follow implements follow mode: after the initial tail, every change
// notification for the watched file triggers a size comparison against the
// last delivered size. Growth delivers the appended lines through the sieve,
// shrinkage prints a truncation notice and adopts the new size as baseline.
//
// Change notifications come from a Watcher; NewFSWatcher provides one backed
// by fsnotify. The engine never interprets event kinds: any event means
// "recheck size", so coalesced or spurious notifications are harmless.
package follow
