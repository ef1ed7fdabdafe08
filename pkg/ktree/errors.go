package ktree

import "errors"

var (
	ErrInvalidBranchingFactor = errors.New("branching factor must be at least 2")
	ErrInvalidIndex           = errors.New("invalid index")
	ErrInvalidTree            = errors.New("invalid tree")
	ErrNullTree               = errors.New("tree has no root")
	ErrUnencodable            = errors.New("value has no codeword")
)
