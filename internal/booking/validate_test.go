package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *BookingRequest {
	return &BookingRequest{
		PlayerName: "Arun",
		Mobile:     "9876543210",
		Place:      "Madurai",
		Console:    "PS5",
		Players:    2,
		Hours:      1.5,
		StartTime:  "18:00",
		Date:       "2025-04-12",
	}
}

func TestValidate_OK(t *testing.T) {
	req := validRequest()
	extras, err := Validate(req)
	require.NoError(t, err)
	assert.Empty(t, extras)
}

func TestValidate_MissingName(t *testing.T) {
	req := validRequest()
	req.PlayerName = "   "
	_, err := Validate(req)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestValidate_MissingPlace(t *testing.T) {
	req := validRequest()
	req.Place = ""
	_, err := Validate(req)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestValidate_ShortPhone(t *testing.T) {
	req := validRequest()
	req.Mobile = "12345"
	_, err := Validate(req)
	var phoneErr *InvalidPhoneError
	require.True(t, errors.As(err, &phoneErr))
	assert.Equal(t, 0, phoneErr.Player)
}

func TestValidate_PhoneSanitizedBeforeCheck(t *testing.T) {
	req := validRequest()
	req.Mobile = "+91 98765-43210"
	_, err := Validate(req)
	require.NoError(t, err)
	assert.Equal(t, "9198765432", req.Mobile)
}

func TestValidate_ExtraPlayerBadPhone(t *testing.T) {
	req := validRequest()
	req.AdditionalPlayers = []Player{
		{Name: "Kumar", Phone: "9876543210"},
		{Name: "Vel", Phone: "123"},
	}
	_, err := Validate(req)
	var phoneErr *InvalidPhoneError
	require.True(t, errors.As(err, &phoneErr))
	assert.Equal(t, 3, phoneErr.Player)
	assert.Contains(t, phoneErr.Error(), "player 3")
}

func TestValidate_NamelessExtrasDropped(t *testing.T) {
	req := validRequest()
	req.AdditionalPlayers = []Player{
		{Name: "", Phone: "9999999999"},
		{Name: "Kumar", Phone: ""},
	}
	extras, err := Validate(req)
	require.NoError(t, err)
	require.Len(t, extras, 1)
	assert.Equal(t, "Kumar", extras[0].Name)
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"9876543210", "9876543210"},
		{"(987) 654-3210", "9876543210"},
		{"98765432109999", "9876543210"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizePhone(tt.in), "input %q", tt.in)
	}
}
