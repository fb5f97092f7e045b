package trainer

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownName is shown for devices that advertise no local name.
const UnknownName = "Unknown"

// FTMSServiceUUID is the 16-bit Fitness Machine Service UUID.
const FTMSServiceUUID uint16 = 0x1826

// ErrScan wraps BLE transport failures during discovery.
var ErrScan = errors.New("BLE scan failed")

// Device is one discovered trainer. Address is the stable key; Name and
// RSSI are informational.
type Device struct {
	Name    string
	Address string
	RSSI    int
}

// NewDevice builds a Device, substituting UnknownName for a blank name.
// The address is kept exactly as reported.
func NewDevice(name, address string, rssi int) Device {
	name = strings.TrimSpace(name)
	if name == "" {
		name = UnknownName
	}
	return Device{Name: name, Address: address, RSSI: rssi}
}

// String formats the device for selection lists.
func (d Device) String() string {
	return fmt.Sprintf("%s (%s) %d dBm", d.Name, d.Address, d.RSSI)
}
