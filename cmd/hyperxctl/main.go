// hyperxctl toggles audio features on HyperX headsets.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/stgray/hyperxctl/internal/ctrlusb"
	"github.com/stgray/hyperxctl/pkg/hid"
	"github.com/stgray/hyperxctl/pkg/hyperx"
)

var (
	deviceName = flag.String("device", hyperx.CloudIIIWired.String(), "target device model")
	backend    = flag.String("backend", "hidapi", "HID transport: hidapi, native or usb")
	jsonOut    = flag.Bool("json", false, "machine-readable list output")
	verbose    = flag.Bool("v", false, "log HID transactions")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "Usage: hyperxctl [flags] <command>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  list               print supported device models")
	fmt.Fprintln(out, "  sidetone on|off    toggle microphone monitoring")
	fmt.Fprintln(out, "  spatial on|off     toggle spatial sound")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	if len(args) == 0 {
		flag.Usage()
		return 2
	}

	switch args[0] {
	case "list":
		return runList()
	case "sidetone", "spatial":
		return runToggle(args)
	default:
		fmt.Fprintf(os.Stderr, "hyperxctl: unknown command %q\n", args[0])
		flag.Usage()
		return 2
	}
}

func runList() int {
	devices := hyperx.SupportedDevices()
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(devices); err != nil {
			fmt.Fprintln(os.Stderr, "hyperxctl:", err)
			return 1
		}
		return 0
	}
	for _, m := range devices {
		desc := hyperx.Descriptor(m.ID)
		fmt.Printf("%-16s  %-20s  VID:0x%04X PID:0x%04X\n", m.ID, m.Label, desc.VendorID, desc.ProductID)
	}
	return 0
}

func runToggle(args []string) int {
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "hyperxctl: %s takes exactly one argument: on or off\n", args[0])
		return 2
	}
	enabled, ok := parseToggle(args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "hyperxctl: unknown state %q, want on or off\n", args[1])
		return 2
	}
	id, err := hyperx.ParseDeviceID(*deviceName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hyperxctl:", err)
		return 2
	}
	ctrl, err := controller(*backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hyperxctl:", err)
		return 2
	}

	if args[0] == "sidetone" {
		err = ctrl.SetSidetone(id, enabled)
	} else {
		err = ctrl.SetSpatialSound(id, enabled)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "hyperxctl:", err)
		return 1
	}
	return 0
}

func parseToggle(s string) (enabled, ok bool) {
	switch s {
	case "on":
		return true, true
	case "off":
		return false, true
	}
	return false, false
}

// controller picks the HID transport for this invocation. The zero
// Controller already uses hidapi; the other backends are injected.
func controller(backend string) (*hyperx.Controller, error) {
	switch backend {
	case "hidapi":
		return &hyperx.Controller{}, nil
	case "native":
		return &hyperx.Controller{NewManager: hid.NewNativeManager}, nil
	case "usb":
		return &hyperx.Controller{NewManager: ctrlusb.NewManager}, nil
	}
	return nil, fmt.Errorf("unknown backend %q, want hidapi, native or usb", backend)
}
