package design

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmitterConfigDefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadEmitterConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, defaultEmitterConfig(), cfg)
}

func TestLoadEmitterConfigReadsTOMLOverrides(t *testing.T) {
	dir := t.TempDir()
	toml := `[emitter]
defaultliteralwidth = 16
defaultliteralsigned = false
indentunit = "    "
switchparallelcase = true
switchfullcase = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chipgo.toml"), []byte(toml), 0o644))

	cfg, err := LoadEmitterConfig(dir)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.DefaultLiteralWidth)
	require.False(t, cfg.DefaultLiteralSigned)
	require.Equal(t, "    ", cfg.IndentUnit)
	require.True(t, cfg.SwitchParallelCase)
	require.True(t, cfg.SwitchFullCase)
}

func TestDesignUsesConfiguredLiteralDefaults(t *testing.T) {
	d, m := newTestModule(t)
	d.SetConfig(EmitterConfig{
		DefaultLiteralWidth:  8,
		DefaultLiteralSigned: false,
		IndentUnit:           "  ",
	})
	require.NoError(t, d.WithModule(m, func() error {
		lit, err := d.Sig(5)
		require.NoError(t, err)
		require.Equal(t, 8, lit.Width())
		require.False(t, lit.Signed())
		return nil
	}))
}
