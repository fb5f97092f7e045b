package trainer

import "sync"

// Collector accumulates scan sightings into a de-duplicated device list.
// It is safe for concurrent use by scan callbacks.
type Collector struct {
	mu      sync.Mutex
	order   []string
	devices map[string]Device
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{devices: make(map[string]Device)}
}

// Add records one advertisement. The first sighting fixes the device's
// position; later sightings may fill in a missing name or a stronger RSSI.
func (c *Collector) Add(name, address string, rssi int) {
	if address == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.devices[address]
	if !ok {
		c.order = append(c.order, address)
		c.devices[address] = NewDevice(name, address, rssi)
		return
	}

	if existing.Name == UnknownName && name != "" {
		existing.Name = NewDevice(name, address, rssi).Name
	}
	if rssi > existing.RSSI {
		existing.RSSI = rssi
	}
	c.devices[address] = existing
}

// Devices returns the collected devices in first-seen order.
func (c *Collector) Devices() []Device {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Device, 0, len(c.order))
	for _, addr := range c.order {
		out = append(out, c.devices[addr])
	}
	return out
}
