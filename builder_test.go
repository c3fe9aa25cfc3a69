package fxaflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrijr/fxaflow"
)

func TestDeviceBuilder(t *testing.T) {
	t.Parallel()

	device := fxaflow.NewDevice("Alice's Laptop", fxaflow.DeviceTypeDesktop).
		WithCapabilities(fxaflow.CapabilitySendTab).
		WithCapabilities(fxaflow.CapabilityCloseTabs).
		Build()

	require.Equal(t, "Alice's Laptop", device.Name)
	require.Equal(t, fxaflow.DeviceTypeDesktop, device.Type)
	require.Equal(t,
		[]fxaflow.DeviceCapability{fxaflow.CapabilitySendTab, fxaflow.CapabilityCloseTabs},
		device.Capabilities)
}

func TestDeviceBuilderEmptyTypeFallsBackToUnknown(t *testing.T) {
	t.Parallel()

	device := fxaflow.NewDevice("Mystery Box", "").Build()
	require.Equal(t, fxaflow.DeviceTypeUnknown, device.Type)
}

func TestDeviceBuilderEmptyNamePanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "fxaflow: device name must not be empty", func() {
		fxaflow.NewDevice("", fxaflow.DeviceTypeDesktop)
	})
}

func TestDeviceBuilderNoCapabilities(t *testing.T) {
	t.Parallel()

	device := fxaflow.NewDevice("Bare Device", fxaflow.DeviceTypeTV).Build()
	require.Empty(t, device.Capabilities)
}
