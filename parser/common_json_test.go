package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asyncapitools/aaerrors"
)

func TestRefOrDecode(t *testing.T) {
	t.Run("object with $ref decodes as reference", func(t *testing.T) {
		var r RefOr[Tag]
		require.NoError(t, json.Unmarshal([]byte(`{"$ref": "#/components/tags/env"}`), &r))
		assert.True(t, r.IsRef())
		assert.Equal(t, "#/components/tags/env", r.Ref)
		assert.Nil(t, r.Value)
	})

	t.Run("object without $ref decodes inline", func(t *testing.T) {
		var r RefOr[Tag]
		require.NoError(t, json.Unmarshal([]byte(`{"name": "env:prod"}`), &r))
		assert.False(t, r.IsRef())
		require.NotNil(t, r.Value)
		assert.Equal(t, "env:prod", r.Value.Name)
	})

	t.Run("non-string $ref fails", func(t *testing.T) {
		var r RefOr[Tag]
		err := json.Unmarshal([]byte(`{"$ref": 42}`), &r)
		require.Error(t, err)
		assert.ErrorIs(t, err, aaerrors.ErrTypeMismatch)
	})
}

func TestRefOrMarshal(t *testing.T) {
	ref := NewRef[Tag]("#/components/tags/env")
	out, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `{"$ref": "#/components/tags/env"}`, string(out))

	inline := NewInline(&Tag{Name: "env:prod"})
	out, err = json.Marshal(inline)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "env:prod"}`, string(out))
}

func TestTagRequiresName(t *testing.T) {
	var tag Tag
	err := json.Unmarshal([]byte(`{"description": "environment"}`), &tag)
	require.Error(t, err)

	var decErr *aaerrors.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.True(t, decErr.IsMissingField)
	assert.Equal(t, "name", decErr.Field)
}

func TestTagExtensions(t *testing.T) {
	doc := `{"name": "env:prod", "x-color": "red"}`
	var tag Tag
	require.NoError(t, json.Unmarshal([]byte(doc), &tag))
	assert.Equal(t, "red", tag.Extra["x-color"])

	out, err := json.Marshal(&tag)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))
}

func TestExternalDocsRequiresURL(t *testing.T) {
	var ed ExternalDocs
	err := json.Unmarshal([]byte(`{"description": "docs"}`), &ed)
	require.Error(t, err)

	var decErr *aaerrors.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.True(t, decErr.IsMissingField)
	assert.Equal(t, "url", decErr.Field)
}

func TestExternalDocsRoundTrip(t *testing.T) {
	doc := `{"url": "https://docs.example.com", "description": "reference docs", "x-team": "platform"}`
	var ed ExternalDocs
	require.NoError(t, json.Unmarshal([]byte(doc), &ed))
	assert.Equal(t, "https://docs.example.com", ed.URL)
	assert.Equal(t, "platform", ed.Extra["x-team"])

	out, err := json.Marshal(&ed)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))
}
