package hyperx

import (
	"io"
	"log/slog"

	"github.com/stgray/hyperxctl/pkg/hid"
)

// Controller executes feature toggles against physical hardware. The zero
// value uses the default HID backend; the CLI and tests inject their own
// transport through NewManager.
//
// Every toggle call brings up the transport, opens the device, performs a
// single transaction and releases both handles before returning. Nothing
// is retried; the first failure is returned as one of the typed errors in
// this package.
type Controller struct {
	// NewManager constructs the HID transport for one call. Nil means
	// hid.NewManager.
	NewManager func() (hid.Manager, error)
}

func (c *Controller) newManager() (hid.Manager, error) {
	if c.NewManager != nil {
		return c.NewManager()
	}
	return hid.NewManager()
}

// withDevice runs fn against an opened device, owning the whole handle
// lifecycle. Close failures after fn are logged, not returned.
func (c *Controller) withDevice(desc DeviceDescriptor, iface int, fn func(hid.Device) error) error {
	mgr, err := c.newManager()
	if err != nil {
		return &InitError{Err: err}
	}
	defer closeQuietly(mgr, "hid manager")

	dev, err := openTarget(mgr, desc, iface)
	if err != nil {
		return &OpenError{VendorID: desc.VendorID, ProductID: desc.ProductID, Err: err}
	}
	defer closeQuietly(dev, "device")

	return fn(dev)
}

// openTarget opens the interface carrying the report when the backend can
// target one, else the first VID/PID match.
func openTarget(mgr hid.Manager, desc DeviceDescriptor, iface int) (hid.Device, error) {
	if o, ok := mgr.(hid.InterfaceOpener); ok {
		return o.OpenInterface(desc.VendorID, desc.ProductID, iface)
	}
	return mgr.OpenVIDPID(desc.VendorID, desc.ProductID)
}

func closeQuietly(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		slog.Warn("close failed", slog.String("what", what), slog.Any("error", err))
	}
}

var defaultController Controller

// SetSidetone toggles microphone monitoring using the default HID backend.
func SetSidetone(id DeviceID, enabled bool) error {
	return defaultController.SetSidetone(id, enabled)
}

// SetSpatialSound toggles spatial sound using the default HID backend.
func SetSpatialSound(id DeviceID, enabled bool) error {
	return defaultController.SetSpatialSound(id, enabled)
}
