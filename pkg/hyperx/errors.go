package hyperx

import "fmt"

// InitError reports a failure to bring up the HID transport subsystem.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize HID subsystem: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// OpenError reports that the physical device could not be opened, most
// commonly because it is unplugged or held by another process.
type OpenError struct {
	VendorID  uint16
	ProductID uint16
	Err       error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("unable to open device (VID:0x%04X PID:0x%04X): %v", e.VendorID, e.ProductID, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// SendError reports a feature report rejected by the transport or the
// device firmware.
type SendError struct {
	ReportID byte
	Selector byte // zero for reports without a selector byte
	Err      error
}

func (e *SendError) Error() string {
	if e.Selector == 0 {
		return fmt.Sprintf("failed to send feature report (id=0x%02X): %v", e.ReportID, e.Err)
	}
	return fmt.Sprintf("failed to send feature report (id=0x%02X selector=0x%02X): %v", e.ReportID, e.Selector, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// ReadError reports a failed or malformed feature report read.
type ReadError struct {
	ReportID byte
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read feature report (id=0x%02X): %v", e.ReportID, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// UnsupportedFeatureError reports that the device model does not expose
// the requested control at all.
type UnsupportedFeatureError struct {
	Device  DeviceID
	Feature Feature
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("device %s does not support %s", e.Device, e.Feature)
}
