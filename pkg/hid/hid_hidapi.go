package hid

import (
	"fmt"

	shid "github.com/sstallion/go-hid"
)

type hidapiManager struct{}

func newManager() (Manager, error) {
	if err := shid.Init(); err != nil {
		return nil, err
	}
	return &hidapiManager{}, nil
}

func (m *hidapiManager) List() ([]Info, error) {
	return m.enumerate(0, 0)
}

func (m *hidapiManager) enumerate(vendorID, productID uint16) ([]Info, error) {
	var out []Info
	err := shid.Enumerate(vendorID, productID, func(info *shid.DeviceInfo) error {
		out = append(out, Info{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Product:      info.ProductStr,
			Manufacturer: info.MfrStr,
			Interface:    info.InterfaceNbr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *hidapiManager) Open(info Info) (Device, error) {
	d, err := shid.OpenPath(info.Path)
	if err != nil {
		return nil, err
	}
	return &hidapiDevice{d}, nil
}

func (m *hidapiManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	d, err := shid.OpenFirst(vendorID, productID)
	if err != nil {
		return nil, err
	}
	return &hidapiDevice{d}, nil
}

// OpenInterface prefers the enumeration entry on the wanted interface.
// hidapi splits composite devices into one entry per interface on Linux and
// Windows; on macOS the whole device shows up once and any entry works.
func (m *hidapiManager) OpenInterface(vendorID, productID uint16, iface int) (Device, error) {
	infos, err := m.enumerate(vendorID, productID)
	if err != nil {
		return nil, err
	}
	info, ok := pickInterface(infos, iface)
	if !ok {
		return m.OpenVIDPID(vendorID, productID)
	}
	return m.Open(info)
}

func (m *hidapiManager) Close() error {
	return shid.Exit()
}

type hidapiDevice struct{ d *shid.Device }

func (d *hidapiDevice) SendFeature(report []byte) error {
	n, err := d.d.SendFeatureReport(report)
	if err != nil {
		return err
	}
	if n != len(report) {
		return fmt.Errorf("short feature write: %d of %d bytes", n, len(report))
	}
	return nil
}

func (d *hidapiDevice) ReadFeature(reportID byte, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("invalid report length %d", length)
	}
	buf := make([]byte, length)
	buf[0] = reportID
	n, err := d.d.GetFeatureReport(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (d *hidapiDevice) Close() error { return d.d.Close() }
