package service

import (
	"encoding/json"
	"errors"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	"certassoc_backend/internals/configs"
)

type GoogleAccount struct {
	Sub   string
	Email string
	Name  string
}

// VerifyGoogleIDToken validates a Google Sign-In ID token against our client
// id and extracts the account fields we store.
func VerifyGoogleIDToken(idToken string) (*GoogleAccount, error) {
	if configs.GoogleClientID == "" {
		return nil, errors.New("GOOGLE_CLIENT_ID not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, err
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, err
	}

	// Decode again via JSON to read the optional name claim uniformly
	buf, _ := json.Marshal(claimSet)
	var extra struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	_ = json.Unmarshal(buf, &extra)

	if claimSet.Sub == "" || claimSet.Email == "" {
		return nil, errors.New("google token missing sub/email")
	}
	name := extra.Name
	if name == "" {
		name = claimSet.Email
	}
	return &GoogleAccount{Sub: claimSet.Sub, Email: claimSet.Email, Name: name}, nil
}
