package metadata_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/renlex/pkg/core/metadata"
)

func TestModuleRoundTrip(t *testing.T) {
	m := metadata.Module{
		Name:    "List",
		Path:    "list.ren",
		PkgPath: "std/list",
		UsesFFI: false,
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded metadata.Module
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, m, decoded)
}

func TestModuleUnmarshalRejectsMissingField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"path":"p","pkgPath":"pp","usesFFI":false}`},
		{"missing path", `{"name":"n","pkgPath":"pp","usesFFI":false}`},
		{"missing pkgPath", `{"name":"n","path":"p","usesFFI":false}`},
		{"missing usesFFI", `{"name":"n","path":"p","pkgPath":"pp"}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m metadata.Module
			err := json.Unmarshal([]byte(tt.body), &m)
			assert.Error(t, err)
		})
	}
}

func TestModuleUnmarshalAcceptsAllFieldsIncludingFalsyValues(t *testing.T) {
	body := `{"name":"","path":"","pkgPath":"","usesFFI":false}`
	var m metadata.Module
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	assert.Equal(t, metadata.Module{}, m)
}
