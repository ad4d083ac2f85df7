package eventstream

import "errors"

// ErrNilQuoteEvent indicates a nil quote event payload was provided to a publisher.
var ErrNilQuoteEvent = errors.New("nil quote event")
