// Package ctrlusb drives HID feature reports over raw USB control
// transfers. It is the fallback transport for hosts without a usable HID
// stack; it needs direct USB access rights and speaks to endpoint zero
// only, addressing requests to the interface that carries the report.
package ctrlusb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/gousb"

	"github.com/stgray/hyperxctl/pkg/hid"
)

const (
	requestSetReport = 0x09 // HID class SET_REPORT
	requestGetReport = 0x01 // HID class GET_REPORT
	typeSetReport    = 0x21 // host to device, class request, interface recipient
	typeGetReport    = 0xA1 // device to host, class request, interface recipient

	reportTypeFeature = 0x03
)

// featureValue builds the wValue of a feature report request: report type
// in the high byte, report ID in the low byte.
func featureValue(reportID byte) uint16 {
	return uint16(reportTypeFeature)<<8 | uint16(reportID)
}

// Manager opens devices through libusb. It satisfies hid.Manager and
// hid.InterfaceOpener.
type Manager struct {
	ctx *gousb.Context
}

func NewManager() (hid.Manager, error) {
	return &Manager{ctx: gousb.NewContext()}, nil
}

// List reports every USB device visible to libusb. Paths are bus:address
// pairs; interface numbers are not part of the device descriptor, so
// Interface is always -1 here.
func (m *Manager) List() ([]hid.Info, error) {
	var infos []hid.Info
	_, err := m.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		infos = append(infos, hid.Info{
			Path:      fmt.Sprintf("%03d:%03d", desc.Bus, desc.Address),
			VendorID:  uint16(desc.Vendor),
			ProductID: uint16(desc.Product),
			Interface: -1,
		})
		return false // collect descriptors without opening anything
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate devices: %w", err)
	}
	return infos, nil
}

func (m *Manager) Open(info hid.Info) (hid.Device, error) {
	bus, addr, err := parseBusAddress(info.Path)
	if err != nil {
		return nil, err
	}
	devs, err := m.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Bus == bus && desc.Address == addr
	})
	if len(devs) == 0 {
		if err != nil {
			return nil, fmt.Errorf("open device: %w", err)
		}
		return nil, fmt.Errorf("no device at %s", info.Path)
	}
	iface := info.Interface
	if iface < 0 {
		iface = 0
	}
	return claim(devs[0], iface)
}

func (m *Manager) OpenVIDPID(vendorID, productID uint16) (hid.Device, error) {
	return m.OpenInterface(vendorID, productID, 0)
}

func (m *Manager) OpenInterface(vendorID, productID uint16, iface int) (hid.Device, error) {
	dev, err := m.ctx.OpenDeviceWithVIDPID(gousb.ID(vendorID), gousb.ID(productID))
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}
	if dev == nil {
		return nil, fmt.Errorf("device not found (VID:0x%04X PID:0x%04X)", vendorID, productID)
	}
	return claim(dev, iface)
}

func (m *Manager) Close() error {
	return m.ctx.Close()
}

// claim takes the interface so the kernel driver lets go of it for the
// duration of the transaction. With auto detach enabled the driver is put
// back when the interface is released again.
func claim(dev *gousb.Device, iface int) (hid.Device, error) {
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		return nil, fmt.Errorf("auto detach: %w", err)
	}
	num, err := dev.ActiveConfigNum()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("active config: %w", err)
	}
	cfg, err := dev.Config(num)
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("claim config %d: %w", num, err)
	}
	intf, err := cfg.Interface(iface, 0)
	if err != nil {
		cfg.Close()
		dev.Close()
		return nil, fmt.Errorf("claim interface %d: %w", iface, err)
	}
	return &Device{dev: dev, cfg: cfg, intf: intf, iface: uint16(iface)}, nil
}

func parseBusAddress(path string) (bus, addr int, err error) {
	b, a, ok := strings.Cut(path, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed device path %q, want bus:address", path)
	}
	if bus, err = strconv.Atoi(b); err != nil {
		return 0, 0, fmt.Errorf("malformed device path %q: %v", path, err)
	}
	if addr, err = strconv.Atoi(a); err != nil {
		return 0, 0, fmt.Errorf("malformed device path %q: %v", path, err)
	}
	return bus, addr, nil
}

// Device is one claimed USB interface.
type Device struct {
	dev   *gousb.Device
	cfg   *gousb.Config
	intf  *gousb.Interface
	iface uint16
}

func (d *Device) SendFeature(report []byte) error {
	if len(report) == 0 {
		return fmt.Errorf("empty feature report")
	}
	n, err := d.dev.Control(typeSetReport, requestSetReport, featureValue(report[0]), d.iface, report)
	if err != nil {
		return err
	}
	if n != len(report) {
		return fmt.Errorf("short feature write: %d of %d bytes", n, len(report))
	}
	return nil
}

func (d *Device) ReadFeature(reportID byte, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("invalid report length %d", length)
	}
	buf := make([]byte, length)
	n, err := d.dev.Control(typeGetReport, requestGetReport, featureValue(reportID), d.iface, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (d *Device) Close() error {
	d.intf.Close()
	cfgErr := d.cfg.Close()
	if err := d.dev.Close(); err != nil {
		return err
	}
	return cfgErr
}
