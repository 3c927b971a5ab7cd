package hid

import (
	"fmt"
	"strconv"
	"strings"
)

// Device represents an opened HID device capable of feature-report I/O.
type Device interface {
	SendFeature(report []byte) error                       // report[0] is the report ID
	ReadFeature(reportID byte, length int) ([]byte, error) // returned buffer starts with the report ID
	Close() error
}

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
	Interface    int // USB interface number, -1 when the backend cannot tell
}

// Manager enumerates and opens HID devices. Close releases the underlying
// subsystem; the Manager must not be used afterwards.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
	OpenVIDPID(vendorID, productID uint16) (Device, error)
	Close() error
}

// InterfaceOpener opens a specific USB interface of a composite device.
// Implementations may choose not to provide it; callers fall back to
// OpenVIDPID.
type InterfaceOpener interface {
	OpenInterface(vendorID, productID uint16, iface int) (Device, error)
}

// NewManager returns the default (hidapi) HID manager.
func NewManager() (Manager, error) {
	return newManager()
}

// NewNativeManager returns the OS-native HID manager, which needs no C
// library at runtime.
func NewNativeManager() (Manager, error) {
	return newNativeManager()
}

// pickInterface selects the enumeration entry on the wanted USB interface,
// falling back to the first entry when no interface matches.
func pickInterface(infos []Info, iface int) (Info, bool) {
	for _, in := range infos {
		if in.Interface == iface {
			return in, true
		}
	}
	if len(infos) > 0 {
		return infos[0], true
	}
	return Info{}, false
}

// interfaceFromPath extracts the USB interface number from the "mi_XX"
// marker Windows embeds in multi-interface device paths. Returns -1 when
// the marker is absent.
func interfaceFromPath(path string) int {
	lower := strings.ToLower(path)
	i := strings.Index(lower, "mi_")
	if i < 0 || i+5 > len(lower) {
		return -1
	}
	n, err := strconv.ParseUint(lower[i+3:i+5], 16, 8)
	if err != nil {
		return -1
	}
	return int(n)
}

// DumpReport renders a report as dash-separated hex for logs.
func DumpReport(report []byte) string {
	var sb strings.Builder
	for i, b := range report {
		if i > 0 {
			sb.WriteByte('-')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}
