package authapi

import (
	"encoding/json"

	"github.com/seojinpark/talktemplate/client/internal/model/auth"
)

// opaqueID tolerates both numeric and string identifiers on the wire.
type opaqueID string

func (o *opaqueID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*o = opaqueID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = opaqueID(s)
	return nil
}

type identityPayload struct {
	ID    opaqueID `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
}

// authPayload matches both response shapes the service is known to emit:
// identity flat or nested under "user", credential in "token" or
// "accessToken".
type authPayload struct {
	identityPayload
	Token       string           `json:"token"`
	AccessToken string           `json:"accessToken"`
	User        *identityPayload `json:"user"`
}

func (p authPayload) credentials() Credentials {
	identity := p.identityPayload
	if p.User != nil {
		identity = *p.User
	}

	token := p.Token
	if token == "" {
		token = p.AccessToken
	}

	return Credentials{
		User: auth.User{
			ID:    string(identity.ID),
			Email: identity.Email,
			Name:  identity.Name,
		},
		Token: token,
	}
}
