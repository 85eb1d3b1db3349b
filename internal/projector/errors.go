package projector

import "errors"

var ErrResyncDisabled = errors.New("resync disabled: no catalog client configured")
