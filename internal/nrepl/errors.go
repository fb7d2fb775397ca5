package nrepl

import "errors"

var (
	ErrConnectionLost  = errors.New("nrepl: connection lost")
	ErrEncode          = errors.New("nrepl: request encode failed")
	ErrDecode          = errors.New("nrepl: response decode failed")
	ErrUnexpectedShape = errors.New("nrepl: unexpected response shape")
	ErrInvalidKey      = errors.New("nrepl: response key is not valid utf-8")
	ErrDuplicateKey    = errors.New("nrepl: duplicate key in response")
)
