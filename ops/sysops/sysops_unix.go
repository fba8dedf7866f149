//go:build linux || darwin

package sysops

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/wofl/woflang"
)

// registerPlatform adds the unix-only words.
func registerPlatform(it *woflang.Interp) {
	it.Register("sys.uname", uname)
}

// uname pushes "sysname release machine" from the uname syscall.
func uname(it *woflang.Interp) error {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return fmt.Errorf("sys.uname: %v", err)
	}
	s := fmt.Sprintf("%s %s %s", cstr(u.Sysname[:]), cstr(u.Release[:]), cstr(u.Machine[:]))
	it.Push(woflang.MakeString(s))
	return nil
}

func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
