package hid

import (
	"bytes"
	"errors"
	"testing"
)

func TestDumpReport(t *testing.T) {
	tests := []struct {
		name   string
		report []byte
		want   string
	}{
		{"empty", nil, ""},
		{"single", []byte{0x20}, "20"},
		{"sidetone header", []byte{0x20, 0x86, 0x01, 0x00}, "20-86-01-00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DumpReport(tt.report); got != tt.want {
				t.Fatalf("DumpReport(% X) = %q, want %q", tt.report, got, tt.want)
			}
		})
	}
}

func TestPickInterface(t *testing.T) {
	infos := []Info{
		{Path: "a", Interface: 0},
		{Path: "b", Interface: 3},
		{Path: "c", Interface: 4},
	}

	tests := []struct {
		name     string
		infos    []Info
		iface    int
		wantPath string
		wantOK   bool
	}{
		{"exact match", infos, 3, "b", true},
		{"no match falls back to first", infos, 7, "a", true},
		{"empty", nil, 3, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickInterface(tt.infos, tt.iface)
			if ok != tt.wantOK || got.Path != tt.wantPath {
				t.Fatalf("pickInterface(_, %d) = %q, %v, want %q, %v", tt.iface, got.Path, ok, tt.wantPath, tt.wantOK)
			}
		})
	}
}

func TestInterfaceFromPath(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{`\\?\hid#vid_03f0&pid_089d&mi_03#8&2f812ac1&0&0000#{4d1e55b2-f16f-11cf-88cb-001111000030}`, 3},
		{`\\?\HID#VID_03F0&PID_089D&MI_00#7&aaaa&0&0000#{4d1e55b2-f16f-11cf-88cb-001111000030}`, 0},
		{`/dev/hidraw3`, -1},
		{`mi_`, -1},
	}
	for _, tt := range tests {
		if got := interfaceFromPath(tt.path); got != tt.want {
			t.Fatalf("interfaceFromPath(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestMockDeviceRecordsSends(t *testing.T) {
	dev := &MockDevice{}
	report := []byte{0x20, 0x86, 0x01, 0x00}
	if err := dev.SendFeature(report); err != nil {
		t.Fatal(err)
	}
	report[2] = 0xEE // recorded copy must not alias the caller's buffer
	if len(dev.Sent) != 1 || !bytes.Equal(dev.Sent[0], []byte{0x20, 0x86, 0x01, 0x00}) {
		t.Fatalf("recorded %v, want the original report", dev.Sent)
	}

	dev.SendErr = errors.New("stall")
	if err := dev.SendFeature(report); err == nil {
		t.Fatal("expected send error")
	}
	if len(dev.Sent) != 1 {
		t.Fatalf("failed send was recorded: %v", dev.Sent)
	}
}

func TestMockDeviceServesReports(t *testing.T) {
	dev := &MockDevice{Reports: map[byte][]byte{0x52: {0x52, 0x01, 0x02}}}

	got, err := dev.ReadFeature(0x52, 3)
	if err != nil {
		t.Fatal(err)
	}
	got[1] = 0xEE
	again, err := dev.ReadFeature(0x52, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, []byte{0x52, 0x01, 0x02}) {
		t.Fatalf("canned report mutated: %v", again)
	}

	if _, err := dev.ReadFeature(0x20, 62); err == nil {
		t.Fatal("expected error for unknown report id")
	}
}

func TestMockManagerOpens(t *testing.T) {
	dev := &MockDevice{}
	mgr := NewMockManager(dev)

	d, err := mgr.OpenInterface(0x03F0, 0x089D, 3)
	if err != nil {
		t.Fatal(err)
	}
	if d != Device(dev) {
		t.Fatal("OpenInterface returned a different device")
	}
	if mgr.LastInterface != 3 || mgr.OpenCalls != 1 {
		t.Fatalf("iface = %d, calls = %d", mgr.LastInterface, mgr.OpenCalls)
	}

	if _, err := mgr.OpenVIDPID(0x03F0, 0x089D); err != nil {
		t.Fatal(err)
	}
	if mgr.LastInterface != -1 {
		t.Fatalf("OpenVIDPID recorded iface %d", mgr.LastInterface)
	}

	mgr.OpenErr = errors.New("unplugged")
	if _, err := mgr.OpenVIDPID(0x03F0, 0x089D); err == nil {
		t.Fatal("expected open error")
	}

	if err := mgr.Close(); err != nil {
		t.Fatal(err)
	}
	if !mgr.Closed {
		t.Fatal("manager not marked closed")
	}
}
