package gating

import "sync/atomic"

// modelID is the process-wide identity source for gates and transforms. It
// is created once at process start, is never reset, and values are never
// reused within a run. IDs are process-local: codecs must not persist them
// as authoritative identity across reloads; OriginalID is the field that
// round-trips through interchange formats.
var modelID atomic.Int64

func nextID() int64 {
	return modelID.Add(1)
}
