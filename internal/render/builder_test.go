package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/jviz/pkg/loader"
)

func TestBuildDocumentChildOrder(t *testing.T) {
	doc := loader.Document{
		{Key: "first", Value: 1},
		{Key: "second", Value: loader.Document{{Key: "inner", Value: true}}},
		{Key: "third", Value: nil},
	}

	root, err := NewBuilder(NewTreeFactory(), DefaultIcons).Build(doc)
	require.NoError(t, err)

	composite, ok := root.(*treeComposite)
	require.True(t, ok, "document root should build a composite, got %T", root)
	require.Len(t, composite.children, 3)

	leaf, ok := composite.children[0].(*treeLeaf)
	require.True(t, ok)
	assert.Equal(t, "first", leaf.key)

	inner, ok := composite.children[1].(*treeComposite)
	require.True(t, ok)
	assert.Equal(t, "second", inner.key)
	assert.Equal(t, 1, inner.depth)
}

func TestBuildArrayLabels(t *testing.T) {
	root, err := NewBuilder(NewTreeFactory(), DefaultIcons).Build(loader.Document{
		{Key: "items", Value: []any{"a", "b"}},
	})
	require.NoError(t, err)

	out, err := root.Render("", true)
	require.NoError(t, err)
	assert.Equal(t, "└─ items\n   ├─ items[0]: a\n   └─ items[1]: b", out)
}

func TestBuildMapKeysSorted(t *testing.T) {
	out, err := NewBuilder(NewTreeFactory(), DefaultIcons).Render(map[string]any{
		"delta": 4,
		"alpha": 1,
		"gamma": 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "├─ alpha: 1\n├─ delta: 4\n└─ gamma: 3", out)
}

func TestBuildScalarBecomesLeaf(t *testing.T) {
	root, err := NewBuilder(NewTreeFactory(), DefaultIcons).Build("text")
	require.NoError(t, err)
	_, ok := root.(*treeLeaf)
	assert.True(t, ok, "scalar should build a leaf, got %T", root)
}

func TestBuildDepthGuard(t *testing.T) {
	value := any(1)
	for i := 0; i < maxBuildDepth+2; i++ {
		value = []any{value}
	}

	_, err := NewBuilder(NewTreeFactory(), DefaultIcons).Build(value)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nesting exceeds")
}

func TestBuildStampsDepths(t *testing.T) {
	doc := loader.Document{
		{Key: "outer", Value: loader.Document{
			{Key: "middle", Value: loader.Document{
				{Key: "leaf", Value: 1},
			}},
		}},
	}

	root, err := NewBuilder(NewTreeFactory(), DefaultIcons).Build(doc)
	require.NoError(t, err)

	rootComposite := root.(*treeComposite)
	assert.Equal(t, 0, rootComposite.depth)

	outer := rootComposite.children[0].(*treeComposite)
	assert.Equal(t, 1, outer.depth)

	middle := outer.children[0].(*treeComposite)
	assert.Equal(t, 2, middle.depth)
}

func TestFactoryFor(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{style: StyleTree},
		{style: StyleRectangle},
		{style: "oval", wantErr: true},
		{style: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("style "+tt.style, func(t *testing.T) {
			factory, err := FactoryFor(tt.style, 60)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown style")
				assert.Contains(t, err.Error(), "tree, rectangle")
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, factory)
		})
	}
}

func TestRectangleFactoryDefaultWidth(t *testing.T) {
	out, err := NewBuilder(NewRectangleFactory(0), DefaultIcons).Render(loader.Document{
		{Key: "k", Value: 1},
	})
	require.NoError(t, err)

	for _, line := range strings.Split(out, "\n") {
		assert.Len(t, []rune(line), DefaultWidth)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "plain", want: "plain"},
		{name: "true", value: true, want: "true"},
		{name: "false", value: false, want: "false"},
		{name: "int", value: 42, want: "42"},
		{name: "integral float", value: 3.0, want: "3"},
		{name: "fractional float", value: 2.5, want: "2.5"},
		{name: "float32", value: float32(1.5), want: "1.5"},
		{name: "huge float stays scientific", value: 1e300, want: "1e+300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.value))
		})
	}
}
