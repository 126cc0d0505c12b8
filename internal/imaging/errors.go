package imaging

import "errors"

var (
	// ErrDecode is returned when a path cannot be read or does not hold a
	// decodable image.
	ErrDecode = errors.New("decode image")

	// ErrEncode is returned when a buffer cannot be written to its
	// destination. Underlying I/O errors remain reachable with errors.As.
	ErrEncode = errors.New("encode image")

	// ErrInvalidRegion is returned by Crop when the rectangle does not lie
	// entirely inside the buffer.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidParameter is returned when an operator parameter is out of
	// its legal range.
	ErrInvalidParameter = errors.New("invalid parameter")
)
