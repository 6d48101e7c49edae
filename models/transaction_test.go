package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleString_AcceptsStringAndNumber(t *testing.T) {
	var payload struct {
		Paid  FlexibleString `json:"paid"`
		Score FlexibleString `json:"score"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"paid":"150.25","score":42}`), &payload))
	assert.Equal(t, FlexibleString("150.25"), payload.Paid)
	assert.Equal(t, FlexibleString("42"), payload.Score)

	require.NoError(t, json.Unmarshal([]byte(`{"score":33.5}`), &payload))
	assert.Equal(t, FlexibleString("33.5"), payload.Score)

	f, err := payload.Score.ToFloat64()
	require.NoError(t, err)
	assert.Equal(t, 33.5, f)

	d, err := FlexibleString("1200").ToDecimal()
	require.NoError(t, err)
	assert.Equal(t, "1200", d.String())

	_, err = FlexibleString("nope").ToDecimal()
	assert.Error(t, err)
}
