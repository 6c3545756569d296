package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electric-power/algo-service/pkg/types"
)

type fakeAlgo struct {
	meta types.SchemeInfo
}

func (f *fakeAlgo) Meta() types.SchemeInfo { return f.meta }

func (f *fakeAlgo) Execute(ctx *Context) (map[string]any, error) {
	return map[string]any{"ok": true}, nil
}

func TestRegisterAndGet(t *testing.T) {
	reset()

	algo := &fakeAlgo{meta: types.SchemeInfo{Code: "TST-01", Name: "test", ResourceType: types.ResourceCPU}}
	Register(algo)

	got := Get("TST-01")
	require.NotNil(t, got)
	assert.Equal(t, "TST-01", got.Meta().Code)

	assert.Nil(t, Get("NOPE"))
}

func TestRegisterDuplicateLastWins(t *testing.T) {
	reset()

	first := &fakeAlgo{meta: types.SchemeInfo{Code: "DUP", Name: "first"}}
	second := &fakeAlgo{meta: types.SchemeInfo{Code: "DUP", Name: "second"}}
	Register(first)
	Register(second)

	got := Get("DUP")
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Meta().Name)

	assert.Len(t, List(), 1)
}

func TestListSortedWithDefaults(t *testing.T) {
	reset()

	Register(&fakeAlgo{meta: types.SchemeInfo{Code: "B-02", Name: "b"}})
	Register(&fakeAlgo{meta: types.SchemeInfo{Code: "A-01", Name: "a", ResourceType: types.ResourceGPU}})

	schemes := List()
	require.Len(t, schemes, 2)
	assert.Equal(t, "A-01", schemes[0].Code)
	assert.Equal(t, types.ResourceGPU, schemes[0].ResourceType)
	// resource type defaults to CPU when the descriptor omits it
	assert.Equal(t, types.ResourceCPU, schemes[1].ResourceType)
	// class name derived from the implementing type
	assert.Equal(t, "fakeAlgo", schemes[0].ClassName)
}

func TestDeriveModel(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		expected string
	}{
		{
			name:     "nested plugin path",
			file:     "/src/algo-service/pkg/plugins/scm/wf02/scm_wf02.go",
			expected: "scm-wf02",
		},
		{
			name:     "top level plugin file",
			file:     "/src/algo-service/pkg/plugins/init.go",
			expected: "",
		},
		{
			name:     "outside plugin root",
			file:     "/src/algo-service/pkg/algorithm/registry.go",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deriveModel(tt.file))
		})
	}
}
