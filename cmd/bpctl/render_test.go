package main

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/butlerportugal/symmetry"
	"github.com/katalvlaran/butlerportugal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ShowsInputAndCanonical(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("b", 0), tensor.NewIndex("a", 1)}
	original, err := tensor.New("g", idx)
	require.NoError(t, err)
	require.NoError(t, original.AddSymmetry(symmetry.NewSymmetric([]int{0, 1})))

	canonical, err := tensor.WithCoefficient("g", []tensor.Index{tensor.NewIndex("a", 0), tensor.NewIndex("b", 1)}, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	render(&buf, original, canonical)

	out := buf.String()
	assert.Contains(t, out, "g_{b a}")
	assert.Contains(t, out, "g_{a b}")
	assert.NotContains(t, out, "sign collapse")
}

func TestRender_NotesSignCollapse(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("a", 0), tensor.NewIndex("a", 1)}
	original, err := tensor.New("A", idx)
	require.NoError(t, err)

	canonical, err := tensor.WithCoefficient("A", idx, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	render(&buf, original, canonical)

	assert.Contains(t, buf.String(), "sign collapse detected")
}
