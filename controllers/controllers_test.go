package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ctb-platform/team-server/config"
	"github.com/ctb-platform/team-server/middleware"
	"github.com/ctb-platform/team-server/models"
)

// setupMockDB swaps config.DB for a gorm instance backed by sqlmock and
// restores it when the test finishes.
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	prev := config.DB
	config.DB = gdb
	t.Cleanup(func() {
		config.DB = prev
		db.Close()
	})
	return mock
}

// newRouter builds a test engine, optionally injecting a session user the
// way middleware.AuthJWT would.
func newRouter(u *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if u != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.CtxUser, *u)
			c.Next()
		})
	}
	return r
}

func perform(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
