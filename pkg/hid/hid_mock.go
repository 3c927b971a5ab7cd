package hid

import "fmt"

// MockDevice is an in-memory Device for tests. Sent reports are recorded,
// reads are served from canned feature reports keyed by report ID.
type MockDevice struct {
	SendErr  error
	ReadErr  error
	CloseErr error
	Reports  map[byte][]byte

	Sent   [][]byte
	Closed bool
}

func (d *MockDevice) SendFeature(report []byte) error {
	if d.SendErr != nil {
		return d.SendErr
	}
	cp := make([]byte, len(report))
	copy(cp, report)
	d.Sent = append(d.Sent, cp)
	return nil
}

func (d *MockDevice) ReadFeature(reportID byte, length int) ([]byte, error) {
	if d.ReadErr != nil {
		return nil, d.ReadErr
	}
	report, ok := d.Reports[reportID]
	if !ok {
		return nil, fmt.Errorf("no feature report 0x%02X", reportID)
	}
	cp := make([]byte, len(report))
	copy(cp, report)
	return cp, nil
}

func (d *MockDevice) Close() error {
	d.Closed = true
	return d.CloseErr
}

// MockManager is an in-memory Manager for tests. Every open hands out the
// same Device.
type MockManager struct {
	Devices  []Info
	OpenErr  error
	CloseErr error
	Device   *MockDevice

	Closed        bool
	OpenCalls     int
	LastInterface int
}

func NewMockManager(dev *MockDevice) *MockManager {
	return &MockManager{Device: dev, LastInterface: -1}
}

func (m *MockManager) List() ([]Info, error) {
	out := make([]Info, len(m.Devices))
	copy(out, m.Devices)
	return out, nil
}

func (m *MockManager) Open(info Info) (Device, error) {
	return m.open(info.Interface)
}

func (m *MockManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	return m.open(-1)
}

func (m *MockManager) OpenInterface(vendorID, productID uint16, iface int) (Device, error) {
	return m.open(iface)
}

func (m *MockManager) open(iface int) (Device, error) {
	m.OpenCalls++
	m.LastInterface = iface
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if m.Device == nil {
		return nil, fmt.Errorf("no mock device installed")
	}
	return m.Device, nil
}

func (m *MockManager) Close() error {
	m.Closed = true
	return m.CloseErr
}
