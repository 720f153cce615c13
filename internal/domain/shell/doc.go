// Package shell holds desktop-wide UI flags: the boot sequence phase and
// command palette visibility.
//
// Boot normally runs off -> booting -> booted. The phase setters are
// unconditional, so a reboot or a skipped animation is just another flag
// write.
package shell
