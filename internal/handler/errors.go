package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration provides no transport address, resulting in no handlers
// being initialized. This is treated as a fatal misconfiguration and causes
// the application to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
