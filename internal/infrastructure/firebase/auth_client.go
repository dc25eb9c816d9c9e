package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// InvalidCredentialsMessage is shown on the login page for rejected
// email/password pairs.
const InvalidCredentialsMessage = "Email atau password salah."

type FirebaseAuthClient struct {
	client     *auth.Client
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client:     client,
		apiKey:     apiKey,
		endpoint:   signInEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type signInError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges an email/password pair for an ID token through the
// Identity Toolkit REST API. The Admin SDK has no password sign-in.
func (f *FirebaseAuthClient) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	if f.apiKey == "" {
		return nil, errors.Unavailable("Firebase API key is not configured", nil)
	}

	payload, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, errors.Internal("Failed to encode sign-in request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint+"?key="+f.apiKey, bytes.NewBuffer(payload))
	if err != nil {
		return nil, errors.Internal("Failed to build sign-in request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.Unavailable("Authentication provider unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Unavailable("Failed to read sign-in response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var failure signInError
		_ = json.Unmarshal(body, &failure)
		if resp.StatusCode == http.StatusBadRequest {
			logger.Debug("sign-in rejected for %s: %s", email, failure.Error.Message)
			return nil, errors.Unauthorized(InvalidCredentialsMessage, fmt.Errorf("identity toolkit: %s", failure.Error.Message))
		}
		return nil, errors.Unavailable("Authentication provider error", fmt.Errorf("identity toolkit status %d: %s", resp.StatusCode, failure.Error.Message))
	}

	var result signInResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Internal("Failed to decode sign-in response", err)
	}

	return &entity.Identity{
		UID:     result.LocalID,
		Email:   result.Email,
		IDToken: result.IDToken,
	}, nil
}

func (f *FirebaseAuthClient) StartSession(ctx context.Context, idToken string, ttl time.Duration) (string, error) {
	cookie, err := f.client.SessionCookie(ctx, idToken, ttl)
	if err != nil {
		return "", errors.Unauthorized("Failed to create session", err)
	}
	return cookie, nil
}

// VerifySession resolves a session cookie to the identity behind it.
// Invalid or revoked cookies are Unauthorized; anything else means the
// provider could not decide and is reported as Unavailable.
func (f *FirebaseAuthClient) VerifySession(ctx context.Context, cookie string) (*entity.Identity, error) {
	token, err := f.client.VerifySessionCookieAndCheckRevoked(ctx, cookie)
	if err != nil {
		if auth.IsSessionCookieInvalid(err) || auth.IsSessionCookieRevoked(err) || auth.IsUserDisabled(err) || auth.IsUserNotFound(err) {
			return nil, errors.Unauthorized("Session expired", err)
		}
		return nil, errors.Unavailable("Failed to verify session", err)
	}

	email, _ := token.Claims["email"].(string)
	return &entity.Identity{
		UID:   token.UID,
		Email: email,
	}, nil
}

func (f *FirebaseAuthClient) SignOut(ctx context.Context, uid string) error {
	if err := f.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Internal("Failed to revoke session", err)
	}
	return nil
}

func (f *FirebaseAuthClient) Ping(ctx context.Context) error {
	_, err := f.client.GetUserByEmail(ctx, "healthcheck@pasaratsiri.invalid")
	if err != nil && !auth.IsUserNotFound(err) {
		return errors.Unavailable("Firebase Auth unreachable", err)
	}
	return nil
}
