// Package buffer provides the text buffer backing the shim's views.
//
// A Buffer holds line-indexed text addressed by byte offsets into the
// full content. It is deliberately small: the shim only needs offset and
// line arithmetic to classify and correct selections, not a full editing
// engine. The host surface owns authoritative text storage; Buffer mirrors
// enough of it to answer the questions the handler layer asks.
//
// Buffers also expose an internal-event window (BeginInternalEvents /
// EndInternalEvents). While the window is open the host is replaying
// batched document events, and the selection-sync layer skips cross-view
// propagation to avoid double-handling.
package buffer
