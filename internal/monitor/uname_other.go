//go:build !unix

package monitor

type utsname struct {
	release  string
	nodename string
}

func uname() (utsname, error) {
	return utsname{}, ErrNotAvailable
}
