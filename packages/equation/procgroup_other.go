//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package equation

import "os/exec"

// killProcessGroup leaves cancellation to exec.CommandContext, which kills
// only the direct child; WaitDelay bounds the wait on any grandchildren.
func killProcessGroup(*exec.Cmd) {}
