package hyperx

import (
	"log/slog"

	"github.com/stgray/hyperxctl/pkg/hid"
)

// Sidetone on the Cloud III wired headset is feature report 0x20 on HID
// interface 3: selector byte 0x86, then the on/off value as a little-endian
// uint16, zero padded to 62 bytes.
const (
	sidetoneReportID  byte = 0x20
	sidetoneSelector  byte = 0x86
	sidetoneReportLen      = 62
	sidetoneInterface      = 3
)

// SetSidetone switches microphone monitoring on or off. The device handle
// is acquired and released within the call; there is no state to read back.
func (c *Controller) SetSidetone(id DeviceID, enabled bool) error {
	desc := Descriptor(id)
	spec, err := sidetoneSpec(id, desc)
	if err != nil {
		return err
	}

	return c.withDevice(desc, spec.Interface, func(dev hid.Device) error {
		report := buildTogglePayload(spec, enabled)
		if err := dev.SendFeature(report); err != nil {
			return &SendError{ReportID: spec.ReportID, Selector: spec.Selector, Err: err}
		}
		slog.Debug("sidetone set",
			slog.String("device", id.String()),
			slog.Bool("enabled", enabled),
			slog.String("report", hid.DumpReport(report[:4])))
		return nil
	})
}
