//go:build !linux && !darwin

package sysops

import "github.com/wofl/woflang"

// registerPlatform adds nothing on platforms without uname.
func registerPlatform(it *woflang.Interp) {}
