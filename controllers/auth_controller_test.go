package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsBadCategory(t *testing.T) {
	setupMockDB(t)
	r := newRouter(nil)
	r.POST("/register", Register)

	w := perform(r, http.MethodPost, "/register", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter22",
		"category": "wizard",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mock := setupMockDB(t)
	r := newRouter(nil)
	r.POST("/register", Register)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	w := perform(r, http.MethodPost, "/register", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter22",
		"category": "hacker",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterCreatesUser(t *testing.T) {
	mock := setupMockDB(t)
	r := newRouter(nil)
	r.POST("/register", Register)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7))

	w := perform(r, http.MethodPost, "/register", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter22",
		"category": "hacker",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "hacker", user["category"])

	// The password hash never appears in responses.
	_, leaked := user["password_hash"]
	assert.False(t, leaked)
}
