/*
Package report renders slice times for humans, either on a console or as
HTML tables.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treeslicer'
func tracer() tracing.Trace {
	return tracing.Select("treeslicer")
}
