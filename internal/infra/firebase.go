// README: Firebase ID tokens identify signed-in travellers. Only the uid is kept; it keys
// estimate history and the lookup quota.
package infra

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// ErrInvalidToken wraps every verification failure.
var ErrInvalidToken = errors.New("invalid id token")

// TokenVerifier maps a bearer token to a caller id.
type TokenVerifier interface {
	VerifyCaller(ctx context.Context, idToken string) (string, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier returns (nil, nil) when projectID is empty, which leaves every caller
// anonymous. credentialsFile is an optional service-account JSON path.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string) (TokenVerifier, error) {
	if projectID == "" {
		return nil, nil
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyCaller(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return callerID(token)
}

func callerID(token *auth.Token) (string, error) {
	if token == nil || token.UID == "" {
		return "", fmt.Errorf("%w: token carries no uid", ErrInvalidToken)
	}
	return token.UID, nil
}
