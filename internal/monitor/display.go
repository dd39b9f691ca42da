package monitor

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// DisplayInfo describes one X11 screen.
type DisplayInfo struct {
	// Screen is the X11 screen number.
	Screen int
	// Width and Height are the screen size in pixels.
	Width  int
	Height int
	// WidthMM and HeightMM are the physical size reported by the server.
	WidthMM  int
	HeightMM int
}

// DisplayReader queries screen geometry from an X server.
type DisplayReader struct {
	// Display is the X display name; empty uses $DISPLAY.
	Display string
}

// NewDisplayReader creates a DisplayReader for $DISPLAY.
func NewDisplayReader() *DisplayReader {
	return &DisplayReader{}
}

// Read connects to the X server and returns every screen.
func (r *DisplayReader) Read() ([]DisplayInfo, error) {
	conn, err := xgb.NewConnDisplay(r.Display)
	if err != nil {
		return nil, NewComponentError(ErrorSourceDisplay, fmt.Errorf("%w: failed to connect to X server: %v", ErrNotAvailable, err))
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil || len(setup.Roots) == 0 {
		return nil, NewComponentError(ErrorSourceDisplay, fmt.Errorf("%w: no screens found", ErrNotAvailable))
	}

	displays := make([]DisplayInfo, 0, len(setup.Roots))
	for i, screen := range setup.Roots {
		displays = append(displays, DisplayInfo{
			Screen:   i,
			Width:    int(screen.WidthInPixels),
			Height:   int(screen.HeightInPixels),
			WidthMM:  int(screen.WidthInMillimeters),
			HeightMM: int(screen.HeightInMillimeters),
		})
	}
	return displays, nil
}
