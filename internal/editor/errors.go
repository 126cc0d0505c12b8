package editor

import "errors"

// ErrNoImageLoaded is returned when an operation needs a current image and
// none has been loaded.
var ErrNoImageLoaded = errors.New("no image loaded")
