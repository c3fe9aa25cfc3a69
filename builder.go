package fxaflow

import "github.com/petrijr/fxaflow/pkg/api"

// DeviceBuilder provides a fluent API for describing the local device:
//
//	device := fxaflow.NewDevice("Alice's Laptop", fxaflow.DeviceTypeDesktop).
//	    WithCapabilities(fxaflow.CapabilitySendTab, fxaflow.CapabilityCloseTabs).
//	    Build()
//
//	sm := fxaflow.New(account, device)
type DeviceBuilder struct {
	device api.DeviceConfig
}

// NewDevice creates a device builder. The name appears in the user's device
// list and must not be empty. An empty deviceType falls back to
// DeviceTypeUnknown.
func NewDevice(name string, deviceType DeviceType) *DeviceBuilder {
	if name == "" {
		panic("fxaflow: device name must not be empty")
	}
	if deviceType == "" {
		deviceType = api.DeviceTypeUnknown
	}
	return &DeviceBuilder{
		device: api.DeviceConfig{
			Name: name,
			Type: deviceType,
		},
	}
}

// WithCapabilities appends to the capability set advertised to the account
// service.
func (b *DeviceBuilder) WithCapabilities(capabilities ...DeviceCapability) *DeviceBuilder {
	b.device.Capabilities = append(b.device.Capabilities, capabilities...)
	return b
}

// Build returns the assembled DeviceConfig.
func (b *DeviceBuilder) Build() DeviceConfig {
	return b.device
}
