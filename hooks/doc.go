// Package hooks holds small state primitives used by the demo panels:
// versioned state cells, mutable refs, an LRU-backed memo and an effect
// runner that pairs every setup with its cleanup.
//
// None of these types are safe for concurrent use; they are owned by a
// single UI event loop.
package hooks
