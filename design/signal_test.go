package design

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestModule(t *testing.T) (*Design, *Module) {
	t.Helper()
	d := New()
	m, err := d.AddModule("dut")
	require.NoError(t, err)
	return d, m
}

func TestAddArithmeticWidthIsMaxOfOperands(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		a, err := d.AddInput("a", 4)
		require.NoError(t, err)
		b, err := d.AddInput("b", 8)
		require.NoError(t, err)

		sum, err := d.Add(a, b)
		require.NoError(t, err)
		require.Equal(t, 8, sum.Width())
		require.False(t, sum.Signed())
		return nil
	}))
}

func TestShiftWidthFollowsLeftOperand(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		a, err := d.AddInput("a", -16)
		require.NoError(t, err)
		n, err := d.AddInput("n", 4)
		require.NoError(t, err)

		shifted, err := d.Shl(a, n)
		require.NoError(t, err)
		require.Equal(t, 16, shifted.Width())
		require.True(t, shifted.Signed())
		return nil
	}))
}

func TestComparisonWidthIsOneUnsigned(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		a, err := d.AddInput("a", -32)
		require.NoError(t, err)
		b, err := d.AddInput("b", -32)
		require.NoError(t, err)

		lt, err := d.Lt(a, b)
		require.NoError(t, err)
		require.Equal(t, 1, lt.Width())
		require.False(t, lt.Signed())
		return nil
	}))
}

func TestCondWidthAndSignedness(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		c, err := d.AddInput("c", 1)
		require.NoError(t, err)
		a, err := d.AddInput("a", -4)
		require.NoError(t, err)
		b, err := d.AddInput("b", -8)
		require.NoError(t, err)

		cond, err := d.Cond(c, a, b)
		require.NoError(t, err)
		require.Equal(t, 8, cond.Width())
		require.True(t, cond.Signed())

		// one unsigned branch makes the result unsigned
		u, err := d.AddInput("u", 8)
		require.NoError(t, err)
		cond2, err := d.Cond(c, a, u)
		require.NoError(t, err)
		require.False(t, cond2.Signed())
		return nil
	}))
}

func TestConcatWidthIsSumUnsigned(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		a, err := d.AddInput("a", -4)
		require.NoError(t, err)
		b, err := d.AddInput("b", 8)
		require.NoError(t, err)

		cat, err := d.Concat([]Coercible{a, b})
		require.NoError(t, err)
		require.Equal(t, 12, cat.Width())
		require.False(t, cat.Signed())
		return nil
	}))
}

func TestRepeatWidthIsNTimesOperand(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		a, err := d.AddInput("a", 4)
		require.NoError(t, err)
		rep, err := d.Repeat(3, a)
		require.NoError(t, err)
		require.Equal(t, 12, rep.Width())
		return nil
	}))
}

func TestSliceWidthIsHiMinusLoPlusOne(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		a, err := d.AddInput("a", 16)
		require.NoError(t, err)
		s, err := d.Slice(a, 11, 4)
		require.NoError(t, err)
		require.Equal(t, 8, s.Width())
		return nil
	}))
}

func TestBitSelectWidthIsOne(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		a, err := d.AddInput("a", 16)
		require.NoError(t, err)
		b, err := d.Bit(a, 3)
		require.NoError(t, err)
		require.Equal(t, 1, b.Width())
		return nil
	}))
}

func TestIndexedRangeWidthIsAbsValue(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		a, err := d.AddInput("a", 16)
		require.NoError(t, err)
		up, err := d.IndexedRange(a, 0, 4)
		require.NoError(t, err)
		require.Equal(t, 4, up.Width())

		down, err := d.IndexedRange(a, 8, -4)
		require.NoError(t, err)
		require.Equal(t, 4, down.Width())
		return nil
	}))
}

func TestSigFromNameLooksUpCurrentModule(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		_, err := d.AddInput("a", 4)
		require.NoError(t, err)
		sig, err := d.Sig("a")
		require.NoError(t, err)
		require.Equal(t, "a", sig.Name())
		return nil
	}))
}

func TestDuplicateSignalNameIsNamingError(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		_, err := d.AddInput("a", 4)
		require.NoError(t, err)
		_, err = d.AddInput("a", 8)
		require.Error(t, err)
		require.IsType(t, &NamingError{}, err)
		return nil
	}))
}
