package verifier

import (
	"context"

	"google.golang.org/api/idtoken"

	"smartmeet/internal/auth"
)

// GoogleVerifier validates Google ID tokens against a client ID.
type GoogleVerifier struct {
	clientID string
}

// NewGoogle creates a GoogleVerifier for the given OAuth client ID.
func NewGoogle(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (auth.GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return auth.GoogleIdentity{}, err
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	return auth.GoogleIdentity{Email: email, Name: name}, nil
}
