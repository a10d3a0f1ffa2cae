package design

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type controlRegs struct {
	DecRate    uint32 `chipgo:"dec_rate"`
	TrigSource int32  `chipgo:"trig_source"`
	Enable     bool   `chipgo:"enable"`
	Skipped    string `chipgo:"-"`
}

func TestInterfaceFromStructBuildsLeafPorts(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		iface := InterfaceFromStruct(controlRegs{})
		b, err := d.AddPort("ctrl", iface, "input", RegOpts{})
		require.NoError(t, err)

		require.Equal(t, 3, b.Len())

		decRate, ok := b.Get("dec_rate").(*Signal)
		require.True(t, ok)
		require.Equal(t, 32, decRate.Width())
		require.False(t, decRate.Signed())

		trigSource, ok := b.Get("trig_source").(*Signal)
		require.True(t, ok)
		require.Equal(t, 32, trigSource.Width())
		require.True(t, trigSource.Signed())

		enable, ok := b.Get("enable").(*Signal)
		require.True(t, ok)
		require.Equal(t, 1, enable.Width())
		return nil
	}))
}

type nestedRegs struct {
	Sub controlRegs `chipgo:"sub"`
}

func TestInterfaceFromStructRecursesIntoNestedStructs(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		iface := InterfaceFromStruct(nestedRegs{})
		b, err := d.AddPort("regs", iface, "input", RegOpts{})
		require.NoError(t, err)

		sub, ok := b.Get("sub").(Bundle)
		require.True(t, ok)
		require.Equal(t, 3, sub.Len())
		return nil
	}))
}
