package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUp_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/signup", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "testuser1", req["username"])
		assert.Equal(t, "Abcdef1!", req["password"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "User created successfully"})
	}))
	defer ts.Close()

	c := New(ts.URL)
	require.NoError(t, c.SignUp(context.Background(), "testuser1", "Abcdef1!"))
}

func TestSignUp_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Username already exists"})
	}))
	defer ts.Close()

	c := New(ts.URL)
	err := c.SignUp(context.Background(), "testuser1", "Abcdef1!")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Username already exists", apiErr.Message)
}

func TestLogin_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"token": "tok123", "username": "testuser1"})
	}))
	defer ts.Close()

	c := New(ts.URL)
	res, err := c.Login(context.Background(), "testuser1", "Abcdef1!")
	require.NoError(t, err)
	assert.Equal(t, "tok123", res.Token)
	assert.Equal(t, "testuser1", res.Username)
}

func TestLogin_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid username or password"})
	}))
	defer ts.Close()

	c := New(ts.URL)
	_, err := c.Login(context.Background(), "testuser1", "wrong")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
}

func TestCheckUsername(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/check-username", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"exists": true})
	}))
	defer ts.Close()

	c := New(ts.URL)
	exists, err := c.CheckUsername(context.Background(), "testuser1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ping", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
	}))
	defer ts.Close()

	c := New(ts.URL)
	require.NoError(t, c.Ping(context.Background()))
}
