package reservation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelValidate(t *testing.T) {
	tests := []struct {
		name   string
		hotel  Hotel
		fields []string
	}{
		{name: "valid without blackout", hotel: lakeInn()},
		{name: "valid with blackout", hotel: fallsInn(t)},
		{name: "missing name and rating", hotel: Hotel{}, fields: []string{"name", "rating"}},
		{
			name: "reversed blackout",
			hotel: Hotel{
				Name:     "Backwards Inn",
				Rating:   2,
				Blackout: &Blackout{From: date(2010, 1, 3), To: date(2009, 12, 23)},
			},
			fields: []string{"blackout"},
		},
		{
			name:   "half blackout",
			hotel:  Hotel{Name: "Half Inn", Rating: 2, Blackout: &Blackout{From: date(2010, 1, 3)}},
			fields: []string{"blackout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hotel.Validate()
			if len(tt.fields) == 0 {
				require.NoError(t, err)

				return
			}

			inputErr := IsInputError(err)
			require.NotNil(t, inputErr)
			assert.Len(t, inputErr.Fields(), len(tt.fields))

			for _, f := range tt.fields {
				assert.Contains(t, inputErr.Fields(), f)
			}
		})
	}
}

func TestHotelJSON(t *testing.T) {
	doc := `{
		"name": "Falls Inn",
		"rating": 4,
		"regular": {"weekday": 160, "weekend": 60},
		"rewards": {"weekday": 110, "weekend": 50},
		"blackout": {"from": "2009-12-23", "to": "2010-01-03"}
	}`

	var h Hotel
	require.NoError(t, json.Unmarshal([]byte(doc), &h))
	assert.Equal(t, fallsInn(t), h)

	out, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))

	var plain Hotel
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Lake Inn","rating":3,"blackout":null}`), &plain))
	assert.Nil(t, plain.Blackout)

	var half Hotel
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Half Inn","rating":2,"blackout":{"from":"2009-12-23"}}`), &half))
	require.NotNil(t, half.Blackout)
	assert.True(t, half.Blackout.To.IsZero())

	inputErr := IsInputError(half.Validate())
	require.NotNil(t, inputErr)
	assert.Contains(t, inputErr.Fields(), "blackout")

	var bad Hotel
	err = json.Unmarshal([]byte(`{"name":"X","rating":1,"blackout":{"from":"23Dec2009","to":"2010-01-03"}}`), &bad)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"name":"X","rating":1,"regular":{"weekday":-1,"weekend":0}}`), &bad)
	assert.Error(t, err)
}
