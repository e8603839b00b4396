// Package emit serializes the collected key-value pairs to an output sink.
//
// The editor core never touches serialization; the command layer calls this
// package exactly once, after the user confirms emission on exit. JSON and
// YAML encodings are supported; the default sink is stdout so output can be
// piped or redirected (kvforge > pairs.json).
package emit
