//go:build unix

package monitor

import (
	"golang.org/x/sys/unix"
)

type utsname struct {
	release  string
	nodename string
}

func uname() (utsname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return utsname{}, err
	}
	return utsname{
		release:  unix.ByteSliceToString(u.Release[:]),
		nodename: unix.ByteSliceToString(u.Nodename[:]),
	}, nil
}
