// auth_service.go
//
// A catalog data service for industrial plastic materials
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of materialsdb.
// materialsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// materialsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with materialsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sync"

	authorizer "github.com/localnerve/authorizer-go"
	"github.com/localnerve/materialsdb/internal/config"
	"github.com/localnerve/materialsdb/internal/utils"
	"github.com/rs/zerolog/log"
)

// ErrInvalidSession means the session cookie was rejected by the identity provider
var ErrInvalidSession = errors.New("session is not valid")

// Identity is the authenticated caller of one request
type Identity struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

// SessionValidator resolves a session cookie to an identity.
// roles, when given, must all be granted to the session.
type SessionValidator interface {
	ValidateSession(ctx context.Context, cookie string, roles []string) (*Identity, error)
}

// AuthorizerValidator validates sessions against an Authorizer instance.
// The client is created on first use and creation is retried after a failure.
type AuthorizerValidator struct {
	cfg *config.Config

	mu     sync.Mutex
	client *authorizer.AuthorizerClient
}

// NewAuthorizerValidator creates a validator for the configured Authorizer
func NewAuthorizerValidator(cfg *config.Config) *AuthorizerValidator {
	return &AuthorizerValidator{cfg: cfg}
}

// Initialized reports whether the Authorizer client has been created
func (v *AuthorizerValidator) Initialized() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.client != nil
}

func (v *AuthorizerValidator) getClient() (*authorizer.AuthorizerClient, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.client != nil {
		return v.client, nil
	}

	// Ping the Authorizer service first
	if err := utils.PingAuthorizer(v.cfg.AuthzURL); err != nil {
		return nil, fmt.Errorf("authorizer ping failed: %w", err)
	}

	log.Info().
		Str("authorizerURL", v.cfg.AuthzURL).
		Str("clientID", v.cfg.AuthzClientID).
		Str("redirectURL", v.cfg.AuthzRedirectURL).
		Msg("initializing authorizer client")

	client, err := authorizer.NewAuthorizerClient(v.cfg.AuthzClientID, v.cfg.AuthzURL, v.cfg.AuthzRedirectURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}
	v.client = client
	return client, nil
}

// ValidateSession implements SessionValidator
func (v *AuthorizerValidator) ValidateSession(ctx context.Context, cookie string, roles []string) (*Identity, error) {
	client, err := v.getClient()
	if err != nil {
		return nil, err
	}

	// Convert roles to []*string
	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	type result struct {
		res *authorizer.ValidateSessionResponse
		err error
	}
	done := make(chan result, 1)
	go func() {
		res, err := client.ValidateSession(&authorizer.ValidateSessionInput{
			Cookie: cookie,
			Roles:  rolesPtrs,
		})
		done <- result{res, err}
	}()

	var r result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r = <-done:
	}

	if r.err != nil {
		return nil, sessionError(r.err)
	}
	if r.res == nil || !r.res.IsValid || r.res.User == nil {
		return nil, ErrInvalidSession
	}

	return identityFromUser(r.res.User)
}

// sessionError separates a provider that could not answer from one that
// rejected the session. Only a rejection is ErrInvalidSession.
func sessionError(err error) error {
	var (
		urlErr    *url.Error
		netErr    net.Error
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		return fmt.Errorf("authorizer unreachable: %w", err)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return fmt.Errorf("authorizer response unreadable: %w", err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidSession, err)
}

// identityFromUser reads the profile fields through their JSON claim names,
// which stay stable across SDK releases.
func identityFromUser(user interface{}) (*Identity, error) {
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("read session user: %w", err)
	}

	var claims map[string]interface{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("read session user: %w", err)
	}

	claim := func(names ...string) string {
		for _, name := range names {
			if s, ok := claims[name].(string); ok && s != "" {
				return s
			}
		}
		return ""
	}

	identity := &Identity{
		ID:              claim("id"),
		Email:           claim("email"),
		FirstName:       claim("given_name", "firstName"),
		LastName:        claim("family_name", "lastName"),
		ProfileImageURL: claim("picture"),
	}
	if identity.ID == "" {
		return nil, ErrInvalidSession
	}
	return identity, nil
}
