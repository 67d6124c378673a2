package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestPing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.Write([]byte(`{"ping":"pong"}`))
	})
	require.NoError(t, c.Ping(context.Background()))
}

func TestLogin_StoresToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])

		w.Write([]byte(`{"token":"tok123","user":{"id":1,"email":"alice@example.com"}}`))
	})

	user, err := c.Login(context.Background(), "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "tok123", c.Token())
}

func TestLogin_ErrorPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	})

	_, err := c.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Empty(t, c.Token())
}

func TestRegister_StoresToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Alice", body["firstName"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"tok456","user":{"id":2,"username":"alice"}}`))
	})

	user, err := c.Register(context.Background(), RegisterRequest{
		Email: "alice@example.com", Username: "alice",
		FirstName: "Alice", LastName: "Smith", Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "tok456", c.Token())
}

func TestAuthorizedRequestsCarryBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"user":{"id":1,"email":"alice@example.com"}}`))
	})
	c.SetToken("tok123")

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestListNutrition(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nutrition", r.URL.Path)
		w.Write([]byte(`{"nutritions":[{"id":5,"name":"Oatmeal","calories":250}]}`))
	})
	c.SetToken("tok")

	entries, err := c.ListNutrition(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Oatmeal", entries[0].Name)
}

func TestCreateNutrition_WrapsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]CreateNutritionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Oatmeal", body["nutrition"].Name)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"nutrition":{"id":9,"name":"Oatmeal"}}`))
	})
	c.SetToken("tok")

	entry, err := c.CreateNutrition(context.Background(), CreateNutritionRequest{
		Name: "Oatmeal", Category: "breakfast", Calories: 250, ImageURL: "http://img",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), entry.ID)
}

func TestGetNutrition(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nutrition/5", r.URL.Path)
		w.Write([]byte(`{"nutrition":{"id":5,"name":"Oatmeal"}}`))
	})
	c.SetToken("tok")

	entry, err := c.GetNutrition(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), entry.ID)
}

func TestActivityStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activity", r.URL.Path)
		w.Write([]byte(`{"stats":{"nutrition":{"calories":{
			"perDay":[{"date":"2025-06-01","totalCaloriesPerDay":1800}],
			"perCategory":[{"category":"breakfast","avgCaloriesPerCategory":312.5}]
		}}}}`))
	})
	c.SetToken("tok")

	stats, err := c.ActivityStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.PerDay, 1)
	assert.Equal(t, int64(1800), stats.PerDay[0].TotalCaloriesPerDay)
	require.Len(t, stats.PerCategory, 1)
	assert.Equal(t, 312.5, stats.PerCategory[0].AvgCaloriesPerCategory)
}

func TestLogoutDropsToken(t *testing.T) {
	c := NewClient("http://localhost", time.Second)
	c.SetToken("tok")
	c.Logout()
	assert.Empty(t, c.Token())
}

func TestErrorWithoutBodyFallsBackToStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.Ping(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}
