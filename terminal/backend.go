package terminal

// Backend abstracts platform terminal I/O so the decoder and output
// buffer can be tested against an in-memory implementation.
type Backend interface {
	// Init puts the terminal into raw mode
	Init() error

	// Fini restores the previous terminal mode
	Fini()

	// Size returns terminal dimensions
	Size() (width, height int)

	// Write sends raw bytes to the terminal
	Write(p []byte) error

	// Read blocks for the next chunk of input bytes. Returns (nil, nil)
	// on poll timeout so callers can service the stop channel; a closed
	// or hung-up input returns io.EOF.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for size changes
	SetResizeHandler(handler func(width, height int))
}
