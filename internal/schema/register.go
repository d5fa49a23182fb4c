package schema

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// RegisterRequest is the registration payload. Username is optional and
// defaults to the local part of the email.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username"`
	Password    string `json:"password" validate:"required,min=8"`
	CountryCode string `json:"country_code" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
}

// Normalize lower-cases the email and fills the default username from the
// email's local part when none was supplied.
func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if strings.TrimSpace(r.Username) == "" {
		r.Username = strings.SplitN(r.Email, "@", 2)[0]
	}
}

// ValidatePhone checks the phone number against the country code. The code
// may be a dialing prefix ("+91") or an ISO region ("IN"); both forms are
// accepted. The check is a plausibility check (length for the region), not
// a carrier-level validity check.
func (r *RegisterRequest) ValidatePhone() error {
	region := strings.TrimSpace(r.CountryCode)
	if strings.HasPrefix(region, "+") {
		code, err := strconv.Atoi(region[1:])
		if err != nil {
			return &ValidationErrors{Fields: []FieldError{{Field: "country_code", Message: "invalid dialing code"}}}
		}
		region = phonenumbers.GetRegionCodeForCountryCode(code)
	}
	num, err := phonenumbers.Parse(r.Phone, region)
	if err != nil || !phonenumbers.IsPossibleNumber(num) {
		return &ValidationErrors{Fields: []FieldError{{Field: "phone", Message: "invalid phone number for country code"}}}
	}
	return nil
}

// Msg is the generic acknowledgement body.
type Msg struct {
	Message string `json:"message"`
}
