package pixavatar

import "errors"

var (
	// ErrInvalidAvatarData is returned by the renderer when the decoded data holds no colors
	// or the x axis does not fit into the bit width implied by the number of colors.
	ErrInvalidAvatarData = errors.New("invalid avatar data")

	// ErrMalformedToken is returned when a token of the avatar data is not a base36 number.
	ErrMalformedToken = errors.New("malformed avatar data token")

	// ErrInvalidComplexity is returned when the generator is asked for a grid
	// wider than the random stream is able to address.
	ErrInvalidComplexity = errors.New("invalid complexity")

	// ErrInvalidSeparator is returned when an empty separator is configured.
	ErrInvalidSeparator = errors.New("separator cannot be empty")

	// ErrUnknownShape is returned when a render method name is not recognized.
	ErrUnknownShape = errors.New("unknown shape")
)
