package lint

import (
	"errors"
	"testing"

	"github.com/oidtool/oids/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		doc      map[string]any
		wantPath []string // nil means valid
	}{
		{
			name: "empty document",
			doc:  map[string]any{},
		},
		{
			name: "root needs no name",
			doc: map[string]any{
				"1": map[string]any{"name": "iso"},
			},
		},
		{
			name: "fully named tree",
			doc: map[string]any{
				"1": map[string]any{
					"name": "iso",
					"2": map[string]any{
						"name": "member-body",
						"840":  map[string]any{"name": "us"},
					},
				},
			},
		},
		{
			name: "scalar siblings are not traversed",
			doc: map[string]any{
				"1": map[string]any{
					"name":        "iso",
					"description": "International Organization for Standardization",
					"aliases":     []any{"iso-org"},
				},
				"version": int64(3),
			},
		},
		{
			name: "non-string name still satisfies the rule",
			doc: map[string]any{
				"1": map[string]any{"name": int64(1)},
			},
		},
		{
			name: "name mapping is not descended into",
			doc: map[string]any{
				"1": map[string]any{
					"name": map[string]any{"nested": map[string]any{}},
				},
			},
		},
		{
			name: "inner nodes missing name",
			doc: map[string]any{
				"1": map[string]any{"2": map[string]any{}},
			},
			wantPath: []string{"1"},
		},
		{
			name: "deep failure",
			doc: map[string]any{
				"1": map[string]any{
					"name": "iso",
					"2": map[string]any{
						"name": "member-body",
						"840":  map[string]any{},
					},
				},
			},
			wantPath: []string{"1", "2", "840"},
		},
		{
			name: "first failing sibling in key order",
			doc: map[string]any{
				"3": map[string]any{},
				"1": map[string]any{"name": "iso"},
				"2": map[string]any{},
			},
			wantPath: []string{"2"},
		},
		{
			name: "parent reported before child",
			doc: map[string]any{
				"1": map[string]any{
					"a": map[string]any{},
				},
			},
			wantPath: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tree.FromValue(tt.doc))
			if tt.wantPath == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantPath, verr.Path)
			assert.True(t, verr.Node.IsMapping())
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	root := tree.FromValue(map[string]any{
		"1": map[string]any{"2": map[string]any{}},
	})

	err := Validate(root)
	require.Error(t, err)
	assert.Equal(t, `missing name for path: ["1"] :: {2 = {}}`, err.Error())
}

func TestValidatePath(t *testing.T) {
	node := tree.FromValue(map[string]any{
		"5": map[string]any{},
	})

	t.Run("non-empty path requires a name on node", func(t *testing.T) {
		err := ValidatePath([]string{"1", "3"}, node)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"1", "3"}, verr.Path)
	})

	t.Run("empty path treats node as root", func(t *testing.T) {
		err := ValidatePath(nil, node)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"5"}, verr.Path)
	})

	t.Run("caller path is not modified", func(t *testing.T) {
		path := make([]string, 1, 4)
		path[0] = "1"
		named := tree.FromValue(map[string]any{
			"name": "x",
			"7":    map[string]any{},
		})

		err := ValidatePath(path, named)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"1", "7"}, verr.Path)
		assert.Equal(t, []string{"1"}, path)
		assert.Equal(t, "1", path[:cap(path)][0])
		assert.Empty(t, path[:cap(path)][1])
	})
}

func TestValidateRequiresMapping(t *testing.T) {
	err := Validate(tree.NewScalar("not a table"))
	assert.ErrorIs(t, err, tree.ErrNotMapping)

	err = Validate(nil)
	assert.ErrorIs(t, err, tree.ErrNotMapping)
}

func TestValidationErrorPathIsCopied(t *testing.T) {
	root := tree.FromValue(map[string]any{
		"1": map[string]any{
			"name": "iso",
			"2":    map[string]any{},
		},
	})

	err := Validate(root)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	verr.Path[0] = "changed"
	err = Validate(root)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"1", "2"}, verr.Path)
}
