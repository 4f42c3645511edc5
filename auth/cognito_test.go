package auth

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCognitoClient implements CognitoClient interface for testing
type mockCognitoClient struct {
	signUpFunc        func(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
	confirmSignUpFunc func(ctx context.Context, params *cognitoidentityprovider.ConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error)
	initiateAuthFunc  func(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
	globalSignOutFunc func(ctx context.Context, params *cognitoidentityprovider.GlobalSignOutInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GlobalSignOutOutput, error)
}

func (m *mockCognitoClient) SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error) {
	if m.signUpFunc != nil {
		return m.signUpFunc(ctx, params, optFns...)
	}
	return &cognitoidentityprovider.SignUpOutput{}, nil
}

func (m *mockCognitoClient) ConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.ConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error) {
	if m.confirmSignUpFunc != nil {
		return m.confirmSignUpFunc(ctx, params, optFns...)
	}
	return &cognitoidentityprovider.ConfirmSignUpOutput{}, nil
}

func (m *mockCognitoClient) InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error) {
	if m.initiateAuthFunc != nil {
		return m.initiateAuthFunc(ctx, params, optFns...)
	}
	return &cognitoidentityprovider.InitiateAuthOutput{}, nil
}

func (m *mockCognitoClient) GlobalSignOut(ctx context.Context, params *cognitoidentityprovider.GlobalSignOutInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GlobalSignOutOutput, error) {
	if m.globalSignOutFunc != nil {
		return m.globalSignOutFunc(ctx, params, optFns...)
	}
	return &cognitoidentityprovider.GlobalSignOutOutput{}, nil
}

func TestService_SignUp(t *testing.T) {
	var captured *cognitoidentityprovider.SignUpInput

	client := &mockCognitoClient{
		signUpFunc: func(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error) {
			captured = params
			return &cognitoidentityprovider.SignUpOutput{}, nil
		},
	}

	svc := NewService(client, "client-123")
	require.NoError(t, svc.SignUp(context.Background(), "alice", "Passw0rd!", "alice@example.com"))

	assert.Equal(t, "client-123", aws.ToString(captured.ClientId))
	assert.Equal(t, "alice", aws.ToString(captured.Username))
	require.Len(t, captured.UserAttributes, 1)
	assert.Equal(t, "email", aws.ToString(captured.UserAttributes[0].Name))
	assert.Equal(t, "alice@example.com", aws.ToString(captured.UserAttributes[0].Value))
}

func TestService_SignIn(t *testing.T) {
	var captured *cognitoidentityprovider.InitiateAuthInput

	client := &mockCognitoClient{
		initiateAuthFunc: func(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error) {
			captured = params
			return &cognitoidentityprovider.InitiateAuthOutput{
				AuthenticationResult: &types.AuthenticationResultType{
					IdToken:      aws.String("id-token"),
					AccessToken:  aws.String("access-token"),
					RefreshToken: aws.String("refresh-token"),
					ExpiresIn:    3600,
				},
			}, nil
		},
	}

	svc := NewService(client, "client-123")
	tokens, err := svc.SignIn(context.Background(), "alice", "Passw0rd!")
	require.NoError(t, err)

	assert.Equal(t, types.AuthFlowTypeUserPasswordAuth, captured.AuthFlow)
	assert.Equal(t, "alice", captured.AuthParameters["USERNAME"])
	assert.Equal(t, "Passw0rd!", captured.AuthParameters["PASSWORD"])

	assert.Equal(t, "id-token", tokens.IDToken)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
	assert.Equal(t, int32(3600), tokens.ExpiresIn)
}

func TestService_SignIn_NoTokens(t *testing.T) {
	client := &mockCognitoClient{
		initiateAuthFunc: func(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error) {
			return &cognitoidentityprovider.InitiateAuthOutput{
				ChallengeName: types.ChallengeNameTypeNewPasswordRequired,
			}, nil
		},
	}

	svc := NewService(client, "client-123")
	_, err := svc.SignIn(context.Background(), "alice", "Passw0rd!")
	assert.Error(t, err)
}

func TestService_SignIn_NotAuthorized(t *testing.T) {
	client := &mockCognitoClient{
		initiateAuthFunc: func(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error) {
			return nil, &types.NotAuthorizedException{Message: aws.String("Incorrect username or password.")}
		},
	}

	svc := NewService(client, "client-123")
	_, err := svc.SignIn(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.True(t, IsNotAuthorized(err))
}

func TestService_ConfirmSignUpAndSignOut(t *testing.T) {
	var confirmInput *cognitoidentityprovider.ConfirmSignUpInput
	var signOutInput *cognitoidentityprovider.GlobalSignOutInput

	client := &mockCognitoClient{
		confirmSignUpFunc: func(ctx context.Context, params *cognitoidentityprovider.ConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error) {
			confirmInput = params
			return &cognitoidentityprovider.ConfirmSignUpOutput{}, nil
		},
		globalSignOutFunc: func(ctx context.Context, params *cognitoidentityprovider.GlobalSignOutInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GlobalSignOutOutput, error) {
			signOutInput = params
			return &cognitoidentityprovider.GlobalSignOutOutput{}, nil
		},
	}

	svc := NewService(client, "client-123")

	require.NoError(t, svc.ConfirmSignUp(context.Background(), "alice", "123456"))
	assert.Equal(t, "123456", aws.ToString(confirmInput.ConfirmationCode))

	require.NoError(t, svc.SignOut(context.Background(), "access-token"))
	assert.Equal(t, "access-token", aws.ToString(signOutInput.AccessToken))
}
