//go:build !windows

package hid

import (
	usbhid "rafaelmartins.com/p/usbhid"
)

type nativeManager struct{}

func newNativeManager() (Manager, error) { return &nativeManager{}, nil }

func (m *nativeManager) List() ([]Info, error) {
	devs, err := usbhid.Enumerate(nil)
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
			Interface:    -1, // not exposed by this backend
		})
	}
	return out, nil
}

type nativeDevice struct{ d *usbhid.Device }

func (m *nativeManager) Open(info Info) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == info.Path
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &nativeDevice{d}, nil
}

func (m *nativeManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.VendorId() == vendorID && dev.ProductId() == productID
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &nativeDevice{d}, nil
}

func (m *nativeManager) Close() error { return nil }

func (d *nativeDevice) SendFeature(report []byte) error {
	// report includes the report ID at report[0]; split for the library
	if len(report) == 0 {
		return nil
	}
	return d.d.SetFeatureReport(report[0], report[1:])
}

func (d *nativeDevice) ReadFeature(reportID byte, length int) ([]byte, error) {
	data, err := d.d.GetFeatureReport(reportID)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, reportID)
	buf = append(buf, data...)
	return buf, nil
}

func (d *nativeDevice) Close() error { return d.d.Close() }
