// Package bus defines the shared address-bus fabric the CPU drives and the
// device contract every memory-mapped component implements against it.
package bus

// Device is the contract every memory-mapped component on the bus
// implements. Devices are purely passive with respect to the bus; they
// never initiate traffic on their own and are responsible for their own
// address-window decoding.
type Device interface {
	// Read returns the byte stored at addr and true if addr falls inside
	// this device's window. It returns false if the device doesn't claim
	// addr, so the Bus can keep polling the next device.
	Read(addr uint16) (uint8, bool)
	// Write applies data at addr if addr falls inside this device's
	// window. It is a no-op otherwise.
	Write(addr uint16, data uint8)
}

// Bus is a registry of Devices. Registration order is significant: on a
// read the Bus polls devices in the order they were connected and returns
// the first one that claims the address. On a write it broadcasts to every
// device; each filters by its own window. This makes registration order
// act as a priority mask when windows overlap (they shouldn't for a correct
// NES memory map, but the rule has to be defined somewhere).
type Bus struct {
	devices []Device
}

// New returns an empty Bus with no devices connected.
func New() *Bus {
	return &Bus{}
}

// Connect registers dev on the bus. Order of calls determines read
// priority.
func (b *Bus) Connect(dev Device) {
	b.devices = append(b.devices, dev)
}

// Read polls connected devices in registration order and returns the first
// claimed value. If no device claims addr, it returns 0.
func (b *Bus) Read(addr uint16) uint8 {
	for _, d := range b.devices {
		if v, ok := d.Read(addr); ok {
			return v
		}
	}
	return 0
}

// Write delivers data to every connected device. Each device decides for
// itself whether addr falls in its window.
func (b *Bus) Write(addr uint16, data uint8) {
	for _, d := range b.devices {
		d.Write(addr, data)
	}
}
