package move

import (
	"errors"
	"fmt"
)

// ErrMalformedSfen is wrapped by every notation decoding failure.
var ErrMalformedSfen = errors.New("malformed sfen move")

var (
	ErrBadLength      = fmt.Errorf("%w: length must be 4 or 5", ErrMalformedSfen)
	ErrBadSquare      = fmt.Errorf("%w: bad square", ErrMalformedSfen)
	ErrBadPieceLetter = fmt.Errorf("%w: bad drop piece", ErrMalformedSfen)
	ErrBadSuffix      = fmt.Errorf("%w: only '+' may follow the squares", ErrMalformedSfen)
	ErrPieceMismatch  = fmt.Errorf("%w: drop letter does not match the piece", ErrMalformedSfen)
)

var (
	ErrEmptySource   = errors.New("no piece on source square")
	ErrNotSideToMove = errors.New("piece on source square does not belong to the side to move")

	ErrNotQuiet = errors.New("move is not quiet")
	ErrInferior = errors.New("move is inferior")
)
