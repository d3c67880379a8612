package graphbinary

import (
	"fmt"
)

var ErrUnregisteredType = fmt.Errorf("no serializer registered for value type")
var ErrUnknownTypeCode = fmt.Errorf("unknown GraphBinary type code")
var ErrUnsupportedType = fmt.Errorf("type is reserved but not supported")
var ErrOutOfRange = fmt.Errorf("integer value out of range for its wire width")
var ErrTruncated = fmt.Errorf("unexpected end of GraphBinary input")
var ErrEncoding = fmt.Errorf("malformed GraphBinary encoding")
