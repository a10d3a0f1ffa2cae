package design

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBundleAddPreservesInsertionOrder(t *testing.T) {
	var b Bundle
	b = NewBundle()
	b.Add("b", 1)
	b.Add("a", 2)
	b.Add("b", 3) // overwrite, order unchanged
	require.Equal(t, []string{"b", "a"}, b.Keys())
	require.Equal(t, 3, b.Get("b"))
}

func TestBundleRegsAndNonRegsFilterRecursively(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		in, err := d.AddInput("in", 4)
		require.NoError(t, err)
		reg, err := d.AddReg("cnt", 4, RegOpts{})
		require.NoError(t, err)

		outer := NewBundle()
		outer.Add("plain", in)
		inner := NewBundle()
		inner.Add("counter", reg)
		outer.Add("nested", inner)

		regs := outer.Regs()
		require.Equal(t, []string{"nested"}, regs.Keys())
		nestedRegs := regs.Get("nested").(Bundle)
		require.Equal(t, []string{"counter"}, nestedRegs.Keys())

		nonregs := outer.NonRegs()
		require.Equal(t, []string{"plain", "nested"}, nonregs.Keys())
		nestedNonregs := nonregs.Get("nested").(Bundle)
		require.Equal(t, 0, nestedNonregs.Len())
		return nil
	}))
}

func TestZipRequiresMatchingShape(t *testing.T) {
	a := NewBundle()
	a.Add("x", 1)
	a.Add("y", 2)
	b := NewBundle()
	b.Add("x", 3)
	b.Add("y", 4)

	entries, err := Zip([]Bundle{a, b})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "x", entries[0].Name)
	require.Equal(t, []Member{1, 3}, entries[0].Values)

	c := NewBundle()
	c.Add("x", 5)
	_, err = Zip([]Bundle{a, c})
	require.Error(t, err)
}
