package engine

import "errors"

// ErrNoLegalMove is returned by Search when the position has no legal
// move to play. It should be unreachable for any non-terminal state and
// is treated as fatal by callers (section 7).
var ErrNoLegalMove = errors.New("engine: no legal move available")
