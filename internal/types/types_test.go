package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkInput struct {
	VendorID FlexUint64 `json:"vendorId"`
}

func TestFlexListShapes(t *testing.T) {
	var single FlexList[linkInput]
	require.NoError(t, json.Unmarshal([]byte(`{"vendorId": 3}`), &single))
	assert.True(t, single.Single)
	assert.Equal(t, 1, single.Len())
	assert.Equal(t, uint64(3), single.Items[0].VendorID.Uint64())

	out, err := json.Marshal(single)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vendorId": 3}`, string(out))

	var many FlexList[linkInput]
	require.NoError(t, json.Unmarshal([]byte(`[{"vendorId": "4"}, {"vendorId": 5}]`), &many))
	assert.False(t, many.Single)
	assert.Equal(t, 2, many.Len())

	out, err = json.Marshal(many)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"vendorId": 4}, {"vendorId": 5}]`, string(out))
}

func TestFlexUint64Rejects(t *testing.T) {
	var v FlexUint64
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &v))
	assert.Error(t, json.Unmarshal([]byte(`true`), &v))
	assert.Error(t, json.Unmarshal([]byte(`-1`), &v))
}

func TestValidationError(t *testing.T) {
	v := NewValidationError()
	assert.NoError(t, v.OrNil())

	v.Add("densityMin", "must be a number")
	v.Add("densityMin", "ignored")
	v.Add("mfrMax", "must be a number")

	err := v.OrNil()
	require.Error(t, err)
	assert.Equal(t, "must be a number", v.Fields["densityMin"])
	assert.Equal(t, "validation failed: densityMin: must be a number; mfrMax: must be a number", err.Error())
}
