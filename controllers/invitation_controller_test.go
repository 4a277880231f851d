package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctb-platform/team-server/models"
)

func TestSendInvitation(t *testing.T) {
	mock := setupMockDB(t)
	u := models.User{ID: 7, Category: models.CategoryBusiness}
	r := newRouter(&u)
	r.POST("/invitations/send", SendInvitation)

	mock.ExpectQuery(`SELECT \* FROM "team_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_role_id", "team_role_name", "team_id"}).
			AddRow(11, "Analyst", 5))
	mock.ExpectQuery(`INSERT INTO "invitations"`).
		WillReturnRows(sqlmock.NewRows([]string{"invitation_id"}).AddRow(1))

	w := perform(r, http.MethodPost, "/invitations/send", map[string]interface{}{
		"email":        "new.member@example.com",
		"team_role_id": 11,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	invitation := body["invitation"].(map[string]interface{})
	assert.Equal(t, "new.member@example.com", invitation["email"])
	assert.Equal(t, models.InvitationPending, invitation["status"])
	assert.NotEmpty(t, invitation["expires_at"])

	// The token is delivered by email only, never in the response.
	_, leaked := invitation["token"]
	assert.False(t, leaked)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSendInvitationRoleNotFound(t *testing.T) {
	mock := setupMockDB(t)
	u := models.User{ID: 7}
	r := newRouter(&u)
	r.POST("/invitations/send", SendInvitation)

	mock.ExpectQuery(`SELECT \* FROM "team_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_role_id"}))

	w := perform(r, http.MethodPost, "/invitations/send", map[string]interface{}{
		"email":        "new.member@example.com",
		"team_role_id": 99,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendInvitationValidation(t *testing.T) {
	setupMockDB(t)
	u := models.User{ID: 7}
	r := newRouter(&u)
	r.POST("/invitations/send", SendInvitation)

	w := perform(r, http.MethodPost, "/invitations/send", map[string]interface{}{
		"email":        "not-an-email",
		"team_role_id": 11,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodPost, "/invitations/send", map[string]interface{}{
		"email": "new.member@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
