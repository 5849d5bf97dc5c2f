package physics

import "errors"

// ErrInvalidParameter reports a physically meaningless input, such as a
// non-positive distance or a contrast outside [0,1].
var ErrInvalidParameter = errors.New("invalid physical parameter")
