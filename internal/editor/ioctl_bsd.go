//go:build darwin || freebsd || netbsd || openbsd

package editor

import "golang.org/x/sys/unix"

// BSD-family termios ioctl requests (Linux uses the TCGETS/TCSETS pair
// instead; see ioctl_linux.go).
const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETA
)
