package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectMutationRequiresAdmin(t *testing.T) {
	a := newTestAPI(t)

	_, studentToken := registerUser(t, a, "student@x.com")

	w := doJSON(t, a, http.MethodPost, "/api/subjects", studentToken, map[string]string{
		"name": "Rogue subject",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, a, http.MethodPut, "/api/subjects/1", studentToken, map[string]string{
		"name": "Renamed",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, a, http.MethodDelete, "/api/subjects/1", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSubjectCRUD(t *testing.T) {
	a := newTestAPI(t)

	adminID, adminToken := registerUser(t, a, "admin@x.com")
	makeAdmin(t, a, adminID)

	w := doJSON(t, a, http.MethodPost, "/api/subjects", adminToken, map[string]string{
		"name":        "Algebra",
		"description": "Letters pretending to be numbers",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	subjectID := uint(decode(t, w)["id"].(float64))

	w = doJSON(t, a, http.MethodGet, fmt.Sprintf("/api/subjects/%d", subjectID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Algebra", decode(t, w)["name"])

	w = doJSON(t, a, http.MethodPut, fmt.Sprintf("/api/subjects/%d", subjectID), adminToken, map[string]string{
		"name":        "Linear Algebra",
		"description": "Vectors now",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Linear Algebra", decode(t, w)["name"])

	w = doJSON(t, a, http.MethodPost, "/api/subjects", adminToken, map[string]string{
		"description": "nameless",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodDelete, fmt.Sprintf("/api/subjects/%d", subjectID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, fmt.Sprintf("/api/subjects/%d", subjectID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubjectFetchMissing(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "a@x.com")

	w := doJSON(t, a, http.MethodGet, "/api/subjects/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
