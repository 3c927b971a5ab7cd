package hyperx

import "fmt"

// FeatureReportSpec describes a HID feature report carrying a
// selector/value control.
type FeatureReportSpec struct {
	ReportID  byte
	Selector  byte
	Length    int // full report length including the report ID byte
	Interface int // USB interface carrying the report; wIndex on the control path
}

// SnapshotReportSpec describes a feature report toggled by reading the
// current report and flipping a two-byte flag in place.
type SnapshotReportSpec struct {
	ReportID   byte
	Length     int
	Interface  int
	FlagOffset int // first of the two flag bytes
}

// DeviceDescriptor is the fixed hardware identity of one device model. A
// nil feature slot means the model does not expose that control.
type DeviceDescriptor struct {
	VendorID  uint16
	ProductID uint16
	Sidetone  *FeatureReportSpec
	Spatial   *SnapshotReportSpec
}

const (
	cloudIIIVID uint16 = 0x03F0 // HP, Inc.
	cloudIIIPID uint16 = 0x089D
)

var cloudIIIWired = DeviceDescriptor{
	VendorID:  cloudIIIVID,
	ProductID: cloudIIIPID,
	Sidetone: &FeatureReportSpec{
		ReportID:  sidetoneReportID,
		Selector:  sidetoneSelector,
		Length:    sidetoneReportLen,
		Interface: sidetoneInterface,
	},
	Spatial: &SnapshotReportSpec{
		ReportID:   spatialReportID,
		Length:     spatialReportLen,
		Interface:  spatialInterface,
		FlagOffset: spatialFlagOffset,
	},
}

// Descriptor resolves the hardware identity for id. The switch is
// exhaustive over the catalog; an id outside it is a programming error,
// not a runtime condition.
func Descriptor(id DeviceID) DeviceDescriptor {
	switch id {
	case CloudIIIWired:
		return cloudIIIWired
	}
	panic(fmt.Sprintf("hyperx: no descriptor for %s", id))
}
