package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrMissingField = errors.New("player name and place are required")

var phoneRx = regexp.MustCompile(`^\d{10}$`)

// InvalidPhoneError names the player whose phone failed the 10-digit check.
// Player 0 is the main booking contact, extras are numbered from 2 to match
// their position on the booking form.
type InvalidPhoneError struct {
	Player int
}

func (e *InvalidPhoneError) Error() string {
	if e.Player == 0 {
		return "phone number must be exactly 10 digits"
	}
	return fmt.Sprintf("player %d phone number must be exactly 10 digits", e.Player)
}

// SanitizePhone strips everything but digits and truncates to 10. Inputs go
// through this before validation, mirroring the input mask on the form.
func SanitizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 10 {
				break
			}
		}
	}
	return b.String()
}

// Validate checks the identity fields of a booking request and returns the
// cleaned additional-player list: phones sanitized, nameless rows dropped.
// The first violation wins. Catalog fields (console, players, hours) are
// covered by binding tags and are not re-checked here.
func Validate(req *BookingRequest) (PlayerList, error) {
	if strings.TrimSpace(req.PlayerName) == "" || strings.TrimSpace(req.Place) == "" {
		return nil, ErrMissingField
	}
	req.Mobile = SanitizePhone(req.Mobile)
	if !phoneRx.MatchString(req.Mobile) {
		return nil, &InvalidPhoneError{Player: 0}
	}
	cleaned := PlayerList{}
	for i, p := range req.AdditionalPlayers {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		phone := SanitizePhone(p.Phone)
		if phone != "" && !phoneRx.MatchString(phone) {
			return nil, &InvalidPhoneError{Player: i + 2}
		}
		cleaned = append(cleaned, Player{Name: name, Phone: phone})
	}
	return cleaned, nil
}
