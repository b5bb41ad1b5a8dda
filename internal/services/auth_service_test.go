package services

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFromUser(t *testing.T) {
	picture := "https://img.example.com/a.png"
	user := map[string]interface{}{
		"id":          "u-1",
		"email":       "ada@example.com",
		"given_name":  "Ada",
		"family_name": nil,
		"picture":     picture,
		"roles":       []string{"user"},
	}

	identity, err := identityFromUser(user)
	require.NoError(t, err)
	assert.Equal(t, &Identity{
		ID:              "u-1",
		Email:           "ada@example.com",
		FirstName:       "Ada",
		ProfileImageURL: picture,
	}, identity)

	_, err = identityFromUser(map[string]interface{}{"email": "x@example.com"})
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestIdentityFromUserCamelCase(t *testing.T) {
	identity, err := identityFromUser(struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}{"u-2", "Grace", "Hopper"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", identity.FirstName)
	assert.Equal(t, "Hopper", identity.LastName)
}

func TestSessionErrorSeparatesOutagesFromRejections(t *testing.T) {
	refused := &url.Error{Op: "Post", URL: "http://authorizer:8080/graphql", Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}}
	err := sessionError(refused)
	assert.NotErrorIs(t, err, ErrInvalidSession)
	assert.ErrorIs(t, err, refused)

	var html map[string]interface{}
	badBody := json.Unmarshal([]byte("<html>bad gateway</html>"), &html)
	assert.NotErrorIs(t, sessionError(badBody), ErrInvalidSession)

	assert.ErrorIs(t, sessionError(context.DeadlineExceeded), context.DeadlineExceeded)
	assert.NotErrorIs(t, sessionError(context.DeadlineExceeded), ErrInvalidSession)

	assert.ErrorIs(t, sessionError(errors.New("unauthorized")), ErrInvalidSession)
}
