package monitor

import (
	"errors"
	"testing"
)

func TestDisplayReaderNoServer(t *testing.T) {
	r := &DisplayReader{Display: ":4242"}
	_, err := r.Read()
	if err == nil {
		t.Skip("an X server is listening on :4242")
	}
	if !errors.Is(err, ErrNotAvailable) {
		t.Errorf("Read() error = %v, want ErrNotAvailable", err)
	}
	if !IsComponentError(err, ErrorSourceDisplay) {
		t.Error("expected a display ComponentError")
	}
}
