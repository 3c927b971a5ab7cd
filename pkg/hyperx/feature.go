package hyperx

import "fmt"

func sidetoneSpec(id DeviceID, desc DeviceDescriptor) (FeatureReportSpec, error) {
	if desc.Sidetone == nil {
		return FeatureReportSpec{}, &UnsupportedFeatureError{Device: id, Feature: FeatureSidetone}
	}
	return *desc.Sidetone, nil
}

func spatialSpec(id DeviceID, desc DeviceDescriptor) (SnapshotReportSpec, error) {
	if desc.Spatial == nil {
		return SnapshotReportSpec{}, &UnsupportedFeatureError{Device: id, Feature: FeatureSpatialSound}
	}
	return *desc.Spatial, nil
}

// buildTogglePayload encodes an on/off value into a zero-filled feature
// report of exactly spec.Length bytes.
func buildTogglePayload(spec FeatureReportSpec, enabled bool) []byte {
	var value uint16
	if enabled {
		value = 1
	}
	report := make([]byte, spec.Length)
	report[0] = spec.ReportID
	report[1] = spec.Selector
	report[2] = byte(value)      // low byte
	report[3] = byte(value >> 8) // high byte, zero for this value range
	// remainder stays zero; the device wants the full report length
	return report
}

// patchSnapshot copies a read-back report and flips its two flag bytes:
// 00 ff enables, ff 00 disables. The snapshot must be full length and
// start with the expected report ID; the input is not modified.
func patchSnapshot(spec SnapshotReportSpec, snapshot []byte, enabled bool) ([]byte, error) {
	if len(snapshot) != spec.Length {
		return nil, fmt.Errorf("snapshot is %d bytes, want %d", len(snapshot), spec.Length)
	}
	if snapshot[0] != spec.ReportID {
		return nil, fmt.Errorf("snapshot starts with 0x%02X, want report id 0x%02X", snapshot[0], spec.ReportID)
	}
	report := make([]byte, len(snapshot))
	copy(report, snapshot)
	if enabled {
		report[spec.FlagOffset], report[spec.FlagOffset+1] = 0x00, 0xFF
	} else {
		report[spec.FlagOffset], report[spec.FlagOffset+1] = 0xFF, 0x00
	}
	return report, nil
}
