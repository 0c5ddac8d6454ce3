package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAndUpdateProfile(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	userID, token := CreateTestUserAndToken(t, testDB)

	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var response struct {
		Profile struct {
			UserID   string `json:"user_id"`
			Username string `json:"username"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, userID.String(), response.Profile.UserID)

	body, _ := json.Marshal(map[string]string{"bio": "I make soup."})
	req = httptest.NewRequest("PUT", "/api/v1/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "I make soup.")
}

func TestGetPublicProfile(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := postForm(router, token, url.Values{
		"title":    {"Tea"},
		"category": {"beverages"},
	})
	require.Equal(t, 201, w.Code)

	// Look up the username from the caller's own profile first.
	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var own struct {
		Profile struct {
			Username string `json:"username"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &own))

	// The public page is readable without a token.
	req = httptest.NewRequest("GET", "/api/v1/users/"+own.Profile.Username, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var public struct {
		Profile struct {
			Username string `json:"username"`
		} `json:"profile"`
		Recipes []map[string]interface{} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	assert.Equal(t, own.Profile.Username, public.Profile.Username)
	require.Len(t, public.Recipes, 1)
	assert.Equal(t, "Tea", public.Recipes[0]["title"])
}

func TestGetPublicProfileNotFound(t *testing.T) {
	router, _ := SetupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/users/nobody", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)
}
