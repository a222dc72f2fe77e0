package soix

import "errors"

var (
	ErrDegreeOutOfRange = errors.New("soix: degree out of range")
)

const (
	panicLeafFull     = "soix: insert into full leaf node outside split protocol"
	panicInternalFull = "soix: insert into full internal node outside split protocol"
)
