// Package hyperx toggles device-side audio features on HyperX headsets by
// sending USB HID feature reports. It keeps a static catalog of supported
// models; listing a device claims capability only, not presence.
package hyperx

import "fmt"

// DeviceID identifies a supported headset model.
type DeviceID int

const (
	// CloudIIIWired is the HyperX Cloud III wired USB headset.
	CloudIIIWired DeviceID = iota
)

// String returns the stable identifier used on the command line and in
// JSON output.
func (id DeviceID) String() string {
	switch id {
	case CloudIIIWired:
		return "cloud_iii_wired"
	}
	return fmt.Sprintf("device(%d)", int(id))
}

// MarshalText implements encoding.TextMarshaler.
func (id DeviceID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *DeviceID) UnmarshalText(text []byte) error {
	parsed, err := ParseDeviceID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseDeviceID maps a stable identifier back to a DeviceID.
func ParseDeviceID(s string) (DeviceID, error) {
	for _, m := range catalog {
		if m.ID.String() == s {
			return m.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown device %q", s)
}

// Feature identifies a controllable device-side feature.
type Feature int

const (
	FeatureSidetone Feature = iota
	FeatureSpatialSound
)

func (f Feature) String() string {
	switch f {
	case FeatureSidetone:
		return "sidetone"
	case FeatureSpatialSound:
		return "spatial sound"
	}
	return fmt.Sprintf("feature(%d)", int(f))
}

// DeviceMetadata pairs a DeviceID with its human-readable label.
type DeviceMetadata struct {
	ID    DeviceID `json:"id"`
	Label string   `json:"label"`
}

var catalog = []DeviceMetadata{
	{ID: CloudIIIWired, Label: "Cloud III (wired)"},
}

// SupportedDevices returns the static list of models this package can
// control. The result is a copy; callers may not reach the catalog itself.
func SupportedDevices() []DeviceMetadata {
	out := make([]DeviceMetadata, len(catalog))
	copy(out, catalog)
	return out
}
