package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeamRolesCopiesAllTemplates(t *testing.T) {
	mock := setupMockDB(t)
	r := newRouter(nil)
	r.POST("/create-role", CreateTeamRoles)

	mock.ExpectQuery(`SELECT \* FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_id", "team_name"}).AddRow(5, "Red"))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "predefined_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"predefined_role_id", "name"}).
			AddRow(1, "Platform Owner").
			AddRow(2, "Platform Admin"))
	mock.ExpectQuery(`INSERT INTO "team_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_role_id"}).AddRow(100).AddRow(101))
	mock.ExpectCommit()

	w := perform(r, http.MethodPost, "/create-role", map[string]interface{}{
		"teamID": 5,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Platform Owner", first["team_role_name"])
	assert.Equal(t, "Team role based on predefined role: Platform Owner", first["description"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamRolesTeamNotFound(t *testing.T) {
	mock := setupMockDB(t)
	r := newRouter(nil)
	r.POST("/create-role", CreateTeamRoles)

	mock.ExpectQuery(`SELECT \* FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_id"}))

	w := perform(r, http.MethodPost, "/create-role", map[string]interface{}{
		"teamID": 99,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSubroles(t *testing.T) {
	mock := setupMockDB(t)
	r := newRouter(nil)
	r.GET("/subroles/:teamId", GetSubroles)

	mock.ExpectQuery(`SELECT \* FROM "team_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_role_id", "team_role_name", "team_id"}).
			AddRow(11, "Business Owner", 5).
			AddRow(12, "Analyst", 5))

	w := perform(r, http.MethodGet, "/subroles/5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	roles := body["role_created"].([]interface{})
	require.Len(t, roles, 2)
	assert.Equal(t, "Business Owner", roles[0].(map[string]interface{})["role_name"])
}

func TestGetSubrolesEmpty(t *testing.T) {
	mock := setupMockDB(t)
	r := newRouter(nil)
	r.GET("/subroles/:teamId", GetSubroles)

	mock.ExpectQuery(`SELECT \* FROM "team_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_role_id", "team_role_name", "team_id"}))

	w := perform(r, http.MethodGet, "/subroles/5", nil)

	// Empty list is a valid, non-error result.
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, body["role_created"])
}

func TestAddSubrole(t *testing.T) {
	mock := setupMockDB(t)
	r := newRouter(nil)
	r.POST("/add-subrole", AddSubrole)

	mock.ExpectQuery(`INSERT INTO "team_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_role_id"}).AddRow(13))

	w := perform(r, http.MethodPost, "/add-subrole", map[string]interface{}{
		"role_name": "Auditor",
		"team_id":   5,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	role := body["role"].(map[string]interface{})
	assert.Equal(t, "Auditor", role["team_role_name"])
	assert.Equal(t, float64(13), role["team_role_id"])
}

func TestAddSubroleValidation(t *testing.T) {
	setupMockDB(t)
	r := newRouter(nil)
	r.POST("/add-subrole", AddSubrole)

	w := perform(r, http.MethodPost, "/add-subrole", map[string]interface{}{
		"role_name": "Auditor",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Role name and team ID are required", body["message"])

	w = perform(r, http.MethodPost, "/add-subrole", map[string]interface{}{
		"team_id": 5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSubroleCascades(t *testing.T) {
	mock := setupMockDB(t)
	r := newRouter(nil)
	r.DELETE("/delete-subroles/:roleID", DeleteSubrole)

	mock.ExpectQuery(`SELECT \* FROM "team_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_role_id", "team_role_name", "team_id"}).
			AddRow(11, "Business Owner", 5))

	// Role deletion cascades like team deletion: invitations, then
	// permission bindings, then the role, all in one transaction.
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "invitations"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "team_role_permissions"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "team_roles"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := perform(r, http.MethodDelete, "/delete-subroles/11", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Team role deleted successfully", body["message"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubroleNotFound(t *testing.T) {
	mock := setupMockDB(t)
	r := newRouter(nil)
	r.DELETE("/delete-subroles/:roleID", DeleteSubrole)

	mock.ExpectQuery(`SELECT \* FROM "team_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"team_role_id"}))

	w := perform(r, http.MethodDelete, "/delete-subroles/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
