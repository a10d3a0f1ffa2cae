package design

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIfElseIfElseCoalesceIntoOneSnippet(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		sel, err := d.AddInput("sel", 2)
		require.NoError(t, err)
		out, err := d.AddReg("out", 4, RegOpts{})
		require.NoError(t, err)

		one, err := d.Sig(1)
		require.NoError(t, err)
		two, err := d.Sig(2)
		require.NoError(t, err)

		cond1, err := d.Eq(sel, one)
		require.NoError(t, err)
		cond2, err := d.Eq(sel, two)
		require.NoError(t, err)

		err = d.If(cond1, func() error {
			return d.Assign(out, one)
		})
		require.NoError(t, err)

		err = d.ElseIf(cond2, func() error {
			return d.Assign(out, two)
		})
		require.NoError(t, err)

		err = d.Else(func() error {
			return d.Assign(out, sel)
		})
		require.NoError(t, err)

		return nil
	}))

	// the whole If/ElseIf/Else chain drives "out" and must land in a
	// single snippet, and therefore a single always block.
	all := append(append([]*Snippet{}, m.initSnippets...), m.codeSnippets...)
	groups := groupSnippets(all)
	outGroups := 0
	for _, g := range groups {
		for _, s := range g {
			if _, ok := s.lvalueSignals["out"]; ok {
				outGroups++
				break
			}
		}
	}
	require.Equal(t, 1, outGroups)
}

func TestElseWithoutIfIsContextError(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		err := d.Else(func() error { return nil })
		require.Error(t, err)
		require.IsType(t, &ContextError{}, err)
		return nil
	}))
}

func TestSwitchCaseDefault(t *testing.T) {
	d, m := newTestModule(t)
	require.NoError(t, d.WithModule(m, func() error {
		sel, err := d.AddInput("sel", 2)
		require.NoError(t, err)
		out, err := d.AddReg("out", 4, RegOpts{})
		require.NoError(t, err)

		zero, err := d.Sig(0)
		require.NoError(t, err)
		one, err := d.Sig(1)
		require.NoError(t, err)

		return d.Switch(sel, true, false, func() error {
			if err := d.Case(zero, func() error {
				return d.Assign(out, zero)
			}); err != nil {
				return err
			}
			if err := d.Case(one, func() error {
				return d.Assign(out, one)
			}); err != nil {
				return err
			}
			return d.Default(func() error {
				return d.Assign(out, sel)
			})
		})
	}))

	require.NotEmpty(t, m.codeSnippets)
}

func TestSwitchFallsBackToConfiguredPragmaDefaults(t *testing.T) {
	d, m := newTestModule(t)
	cfg := d.Config()
	cfg.SwitchParallelCase = true
	cfg.SwitchFullCase = true
	d.SetConfig(cfg)

	require.NoError(t, d.WithModule(m, func() error {
		sel, err := d.AddInput("sel", 1)
		require.NoError(t, err)
		out, err := d.AddReg("out", 1, RegOpts{})
		require.NoError(t, err)
		zero, err := d.Sig(0)
		require.NoError(t, err)

		return d.Switch(sel, false, false, func() error {
			return d.Default(func() error {
				return d.Assign(out, zero)
			})
		})
	}))

	var pragmaLines []string
	for _, s := range m.codeSnippets {
		for _, line := range s.textLines {
			if line == "" {
				continue
			}
			pragmaLines = append(pragmaLines, line)
		}
	}
	found := map[string]bool{}
	for _, line := range pragmaLines {
		for _, pragma := range []string{"parallel_case", "full_case"} {
			if strings.Contains(line, pragma) {
				found[pragma] = true
			}
		}
	}
	require.True(t, found["parallel_case"], "expected parallel_case pragma from config default")
	require.True(t, found["full_case"], "expected full_case pragma from config default")
}
