//go:build linux

package editor

import "golang.org/x/sys/unix"

// Linux's termios ioctl requests, matching the pack's other kilo ports
// (braheezy-kilo, ekediala-kilo) which issue these directly via
// golang.org/x/sys/unix rather than golang.org/x/term.
const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETS
)
