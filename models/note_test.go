package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_UnmarshalDistinguishesMissingText(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantHas  bool
		wantText string
	}{
		{name: "text present", body: `{"text":"hello"}`, wantHas: true, wantText: "hello"},
		{name: "empty text", body: `{"text":""}`, wantHas: true, wantText: ""},
		{name: "missing text", body: `{}`, wantHas: false},
		{name: "null text", body: `{"text":null}`, wantHas: false},
		{name: "json null", body: `null`, wantHas: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Note
			require.NoError(t, json.Unmarshal([]byte(tt.body), &n))
			assert.Equal(t, tt.wantHas, n.HasText())
			assert.Equal(t, tt.wantText, n.Value())
		})
	}
}

func TestNote_MarshalSendsTextProperty(t *testing.T) {
	data, err := json.Marshal(NewNote("draft"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"draft"}`, string(data))
}

func TestNewAppBuildInfo_BlankValuesAreNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", " ", "")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
