package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/pkg/auth"
)

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func seedTestStudent(t *testing.T, env *testEnv, email, password string, status models.StudentStatus) *models.Student {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	student := &models.Student{
		FirstName: "Priya",
		Email:     email,
		Password:  hash,
		Status:    status,
	}
	require.NoError(t, env.students.Create(context.Background(), student))
	return student
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv()
	student := seedTestStudent(t, env, "priya@example.com", "secret123", models.StudentRegistered)

	rec := doJSON(t, env.router, http.MethodPost, "/api/login", map[string]string{
		"email":    "priya@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "STUDENT", body["userType"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, student.ID.String(), user["id"])
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	env := newTestEnv()
	seedTestStudent(t, env, "priya@example.com", "secret123", models.StudentRegistered)

	for _, payload := range []map[string]string{
		{"email": "priya@example.com", "password": "wrong"},
		{"email": "nobody@example.com", "password": "secret123"},
	} {
		rec := doJSON(t, env.router, http.MethodPost, "/api/login", payload)

		require.Equal(t, http.StatusOK, rec.Code, payload["email"])
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid email or password", body["message"])
	}
}

func TestLoginEndpointSuspendedStudent(t *testing.T) {
	env := newTestEnv()
	seedTestStudent(t, env, "sam@example.com", "secret123", models.StudentSuspended)

	rec := doJSON(t, env.router, http.MethodPost, "/api/login", map[string]string{
		"email":    "sam@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Account is suspended. Please contact administrator.", body["message"])
}

func TestLoginEndpointMissingPassword(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodPost, "/api/login", map[string]string{
		"email": "priya@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestAuthStatusEndpoint(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodGet, "/api/auth/status", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "auth", body["service"])
	assert.Equal(t, "UP", body["status"])
	assert.Equal(t, false, body["tokenAuth"])
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv()

	payload := map[string]any{
		"firstName":   "Priya",
		"email":       "priya@example.com",
		"password":    "secret123",
		"gender":      "FEMALE",
		"dateOfBirth": "14/03/2004",
		"age":         22,
		"mobileNo":    "9876543210",
	}

	rec := doJSON(t, env.router, http.MethodPost, "/api/auth/register", payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["studentId"])

	// Duplicate email keeps the registration response shape
	rec = doJSON(t, env.router, http.MethodPost, "/api/auth/register", payload)
	require.Equal(t, http.StatusConflict, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "An account with this email already exists", body["message"])
}

func TestRegisterEndpointValidation(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodPost, "/api/auth/register", map[string]any{
		"firstName":   "Priya",
		"email":       "not-an-email",
		"password":    "short",
		"gender":      "FEMALE",
		"dateOfBirth": "14/03/2004",
		"age":         42,
		"mobileNo":    "12345",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])

	errDetail, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VAL_001", errDetail["code"])

	fields, ok := errDetail["details"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Password")
	assert.Contains(t, fields, "Age")
	assert.Contains(t, fields, "MobileNo")
}

func TestLogoutEndpoint(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodPost, "/api/logout", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
}
