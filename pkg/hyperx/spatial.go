package hyperx

import (
	"log/slog"

	"github.com/stgray/hyperxctl/pkg/hid"
)

// Spatial sound on the Cloud III wired headset lives in feature report
// 0x52 on HID interface 0, a 162-byte configuration block. The toggle is
// the 16-bit flag at offsets 3/4: 00 ff on, ff 00 off. The rest of the
// block is device state and must be carried over unchanged, so the toggle
// reads the current report, patches the flag and writes it back.
const (
	spatialReportID   byte = 0x52
	spatialReportLen       = 162
	spatialInterface       = 0
	spatialFlagOffset      = 3
)

// SetSpatialSound switches spatial sound on or off.
func (c *Controller) SetSpatialSound(id DeviceID, enabled bool) error {
	desc := Descriptor(id)
	spec, err := spatialSpec(id, desc)
	if err != nil {
		return err
	}

	return c.withDevice(desc, spec.Interface, func(dev hid.Device) error {
		snapshot, err := dev.ReadFeature(spec.ReportID, spec.Length)
		if err != nil {
			return &ReadError{ReportID: spec.ReportID, Err: err}
		}
		report, err := patchSnapshot(spec, snapshot, enabled)
		if err != nil {
			return &ReadError{ReportID: spec.ReportID, Err: err}
		}
		if err := dev.SendFeature(report); err != nil {
			return &SendError{ReportID: spec.ReportID, Err: err}
		}
		slog.Debug("spatial sound set",
			slog.String("device", id.String()),
			slog.Bool("enabled", enabled),
			slog.String("flags", hid.DumpReport(report[spec.FlagOffset:spec.FlagOffset+2])))
		return nil
	})
}
