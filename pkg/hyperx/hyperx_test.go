package hyperx

import (
	"reflect"
	"testing"
)

func TestSupportedDevices(t *testing.T) {
	got := SupportedDevices()
	want := []DeviceMetadata{
		{ID: CloudIIIWired, Label: "Cloud III (wired)"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SupportedDevices() = %+v, want %+v", got, want)
	}
}

func TestSupportedDevicesReturnsCopy(t *testing.T) {
	first := SupportedDevices()
	first[0].Label = "scribbled"
	if got := SupportedDevices()[0].Label; got != "Cloud III (wired)" {
		t.Fatalf("catalog mutated through returned slice: %q", got)
	}
}

// Every cataloged device must resolve to a descriptor with real hardware
// identifiers. This is the startup self-check for the closed enum.
func TestCatalogResolves(t *testing.T) {
	for _, m := range SupportedDevices() {
		desc := Descriptor(m.ID)
		if desc.VendorID == 0 || desc.ProductID == 0 {
			t.Fatalf("%s: incomplete descriptor %+v", m.ID, desc)
		}
	}
}

func TestCloudIIIDescriptor(t *testing.T) {
	desc := Descriptor(CloudIIIWired)
	if desc.VendorID != 0x03F0 {
		t.Fatalf("VendorID = 0x%04X, want 0x03F0", desc.VendorID)
	}
	if desc.ProductID != 0x089D {
		t.Fatalf("ProductID = 0x%04X, want 0x089D", desc.ProductID)
	}

	if desc.Sidetone == nil {
		t.Fatal("sidetone spec missing")
	}
	st := *desc.Sidetone
	want := FeatureReportSpec{ReportID: 0x20, Selector: 0x86, Length: 62, Interface: 3}
	if st != want {
		t.Fatalf("sidetone spec = %+v, want %+v", st, want)
	}

	if desc.Spatial == nil {
		t.Fatal("spatial spec missing")
	}
	sp := *desc.Spatial
	wantSp := SnapshotReportSpec{ReportID: 0x52, Length: 162, Interface: 0, FlagOffset: 3}
	if sp != wantSp {
		t.Fatalf("spatial spec = %+v, want %+v", sp, wantSp)
	}
}

func TestParseDeviceID(t *testing.T) {
	tests := []struct {
		in      string
		want    DeviceID
		wantErr bool
	}{
		{"cloud_iii_wired", CloudIIIWired, false},
		{"cloud_iii", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDeviceID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseDeviceID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseDeviceID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDeviceIDTextRoundTrip(t *testing.T) {
	text, err := CloudIIIWired.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "cloud_iii_wired" {
		t.Fatalf("MarshalText = %q", text)
	}

	var id DeviceID
	if err := id.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if id != CloudIIIWired {
		t.Fatalf("round trip = %v, want %v", id, CloudIIIWired)
	}

	if err := id.UnmarshalText([]byte("cloud_ix")); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestFeatureString(t *testing.T) {
	if got := FeatureSidetone.String(); got != "sidetone" {
		t.Fatalf("FeatureSidetone = %q", got)
	}
	if got := FeatureSpatialSound.String(); got != "spatial sound" {
		t.Fatalf("FeatureSpatialSound = %q", got)
	}
}
