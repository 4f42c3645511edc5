// Package auth wraps the Cognito identity provider. The catalogue core
// performs no token validation itself; these operations exist so the same
// deployment can serve the signup/signin surface the gateway exposes.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// Tokens is the pair (plus refresh token) returned by a successful signin.
type Tokens struct {
	IDToken      string `json:"idToken,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int32  `json:"expiresIn,omitempty"`
}

// Service exposes the identity operations backed by a Cognito user pool
// app client.
type Service struct {
	client   CognitoClient
	clientID string
}

// NewService creates a new Cognito-backed auth service
func NewService(client CognitoClient, clientID string) *Service {
	return &Service{
		client:   client,
		clientID: clientID,
	}
}

// SignUp registers a new user with an email attribute. The user must
// confirm with the emailed code before signin works.
func (s *Service) SignUp(ctx context.Context, username, password, email string) error {
	_, err := s.client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(s.clientID),
		Username: aws.String(username),
		Password: aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
		},
	})
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	return nil
}

// ConfirmSignUp completes registration with the confirmation code.
func (s *Service) ConfirmSignUp(ctx context.Context, username, code string) error {
	_, err := s.client.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(s.clientID),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
	})
	if err != nil {
		return fmt.Errorf("confirm signup failed: %w", err)
	}
	return nil
}

// SignIn exchanges username/password for a token pair.
func (s *Service) SignIn(ctx context.Context, username, password string) (*Tokens, error) {
	result, err := s.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(s.clientID),
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("signin failed: %w", err)
	}

	auth := result.AuthenticationResult
	if auth == nil {
		return nil, fmt.Errorf("signin did not return tokens (challenge %s)", result.ChallengeName)
	}

	return &Tokens{
		IDToken:      aws.ToString(auth.IdToken),
		AccessToken:  aws.ToString(auth.AccessToken),
		RefreshToken: aws.ToString(auth.RefreshToken),
		ExpiresIn:    auth.ExpiresIn,
	}, nil
}

// SignOut invalidates every token issued to the user behind the access token.
func (s *Service) SignOut(ctx context.Context, accessToken string) error {
	_, err := s.client.GlobalSignOut(ctx, &cognitoidentityprovider.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return fmt.Errorf("signout failed: %w", err)
	}
	return nil
}

// IsNotAuthorized checks if an error is a Cognito authentication failure
func IsNotAuthorized(err error) bool {
	var nae *types.NotAuthorizedException
	return errors.As(err, &nae)
}
