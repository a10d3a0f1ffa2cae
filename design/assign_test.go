package design

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectSingleMasterDrivesSlave(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		master, err := d.AddInput("a", 8)
		require.NoError(t, err)
		slave, err := d.AddOutput("b", 8, RegOpts{})
		require.NoError(t, err)

		require.NoError(t, d.Connect(master, slave))

		require.False(t, slave.register)
		require.NotNil(t, slave.portalias)
		require.Equal(t, "a", *slave.portalias)
		require.Len(t, m.regactions, 1)
		require.Contains(t, m.regactions[0], "assign b = a;")
		return nil
	}))
}

func TestConnectWithNoCandidateMasterIsStructuralError(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		b1, err := d.AddOutput("b1", 8, RegOpts{})
		require.NoError(t, err)
		b2, err := d.AddOutput("b2", 8, RegOpts{})
		require.NoError(t, err)

		err = d.Connect(b1, b2)
		require.Error(t, err)
		require.IsType(t, &StructuralError{}, err)
		return nil
	}))
}

func TestConnectWithMultipleCandidateMastersIsStructuralError(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		a, err := d.AddInput("a", 8)
		require.NoError(t, err)
		b, err := d.AddInput("b", 8)
		require.NoError(t, err)

		err = d.Connect(a, b)
		require.Error(t, err)
		require.IsType(t, &StructuralError{}, err)
		return nil
	}))
}

func TestConnectedSlaveRejectsLaterAssign(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		master, err := d.AddInput("a", 8)
		require.NoError(t, err)
		slave, err := d.AddOutput("b", 8, RegOpts{})
		require.NoError(t, err)

		require.NoError(t, d.Connect(master, slave))

		err = d.Assign(slave, master)
		require.Error(t, err)
		require.IsType(t, &TypeError{}, err)
		return nil
	}))
}

func TestConnectRecursesThroughBundles(t *testing.T) {
	// A submodule input port, once instantiated into the parent, becomes a
	// local signal shaped like an undriven AddOutput: register==true,
	// never assigned, meant to be driven structurally via Connect. That
	// makes it the slave in a Connect against an ordinary driving wire.
	d := New()
	sub, err := d.AddModule("leaf")
	require.NoError(t, err)
	require.NoError(t, d.WithModule(sub, func() error {
		_, err := d.AddInput("x", 4)
		return err
	}))

	top, err := d.AddModule("top")
	require.NoError(t, err)
	require.NoError(t, d.WithModule(top, func() error {
		inst, err := d.AddInst("u_leaf", sub)
		require.NoError(t, err)

		driver, err := d.AddInput("driver", 4)
		require.NoError(t, err)

		wrapped := NewBundle()
		wrapped.Add("x", driver)

		require.NoError(t, d.Connect(inst, wrapped))

		x, ok := inst.Get("x").(*Signal)
		require.True(t, ok)
		require.False(t, x.register)
		require.NotNil(t, x.portalias)
		require.Equal(t, "driver", *x.portalias)
		return nil
	}))
}
