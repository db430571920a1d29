package transform

import "errors"

// ErrPlannerLoop indicates a Recursive transform exceeded its iteration
// cap without reaching a fixed point.
var ErrPlannerLoop = errors.New("transform: recursive transformer exceeded iteration cap")
