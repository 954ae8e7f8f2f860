package smu

import "fmt"

// ModuleNotLoadedError reports a missing ryzen_smu sysfs attribute,
// usually because the kernel module is not loaded.
type ModuleNotLoadedError struct {
	Path string
}

func (e *ModuleNotLoadedError) Error() string {
	return fmt.Sprintf("kernel module not loaded: %s not found", e.Path)
}

// PermissionError reports an unreadable sysfs attribute.
type PermissionError struct {
	Path string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied reading %s: run as root or configure udev rules", e.Path)
}
