package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fm-drums/engine"
	"github.com/lixenwraith/fm-drums/voice"
)

var _ Bank = (*engine.Engine)(nil)

func TestEnsureBootstrapsDefaults(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nested", "drum_params.txt"))
	require.False(t, f.Exists())

	created, err := f.Ensure()
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(f.Path)
	require.NoError(t, err)
	assert.Equal(t, DefaultRecord, string(data))

	created, err = f.Ensure()
	require.NoError(t, err)
	assert.False(t, created, "existing file is left alone")
}

func TestBootstrapLoadsDefaults(t *testing.T) {
	e := engine.NewDefault()
	f := NewFile(filepath.Join(t.TempDir(), "p.txt"))

	created, n, err := f.Bootstrap(e)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 85, n)

	e.WithVoices(func(vs []voice.Voice) {
		assert.Equal(t, 59.016, vs[0].(*voice.Kick).FB)
	})
}

func TestSaveLoadThroughEngine(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "p.txt"))

	src := engine.NewDefault()
	src.Do(func(v voice.Voice) {
		v.(*voice.Kick).FB = 77.123456789
	})
	require.NoError(t, f.Save(src))

	dst := engine.NewDefault()
	n, err := f.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, 85, n)

	var a, b []float64
	src.WithVoices(func(vs []voice.Voice) { a = values(vs) })
	dst.WithVoices(func(vs []voice.Voice) { b = values(vs) })
	assert.Equal(t, a, b)
}

func TestLoadMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "missing.txt"))
	_, err := f.Load(engine.NewDefault())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLeavesRuntimeState(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "p.txt"))
	_, err := f.Ensure()
	require.NoError(t, err)

	e := engine.NewDefault()
	e.RequestTrigger()
	e.Stream(make([][2]float64, 64))

	_, err = f.Load(e)
	require.NoError(t, err)
	e.Do(func(v voice.Voice) {
		assert.True(t, v.Active(), "load does not reset the sounding voice")
	})
}
