package api

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"studyvault/edu-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUpload(t *testing.T, a *API, token, subject, title string) model.File {
	t.Helper()

	w := uploadFile(t, a, token, map[string]string{
		"subject":  subject,
		"title":    title,
		"fileType": "PDF",
	}, "notes.pdf", "file contents")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	fileID := decode(t, w)["fileId"].(float64)

	var file model.File
	require.NoError(t, a.DB.Where("id = ?", uint(fileID)).First(&file).Error)
	return file
}

func TestUploadListFavoriteScenario(t *testing.T) {
	a := newTestAPI(t)

	userID, _ := registerUser(t, a, "a@x.com")
	makeAdmin(t, a, userID)

	w := doJSON(t, a, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)

	w = doJSON(t, a, http.MethodPost, "/api/subjects", token, map[string]string{
		"name": "Math",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	file := mustUpload(t, a, token, "Math", "Notes")
	assert.Equal(t, "notes.pdf", file.OriginalName)
	assert.True(t, a.Store.Exists(file.StoredName))

	w = doJSON(t, a, http.MethodGet, "/api/files/subject?subject=Math", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	listing := decodeList(t, w)
	require.Len(t, listing, 1)
	assert.Equal(t, "Notes", listing[0]["title"])
	assert.Equal(t, false, listing[0]["is_favorite"])

	w = doJSON(t, a, http.MethodPost, fmt.Sprintf("/api/files/%d/favorite", file.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/files/subject?subject=Math", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	listing = decodeList(t, w)
	require.Len(t, listing, 1)
	assert.Equal(t, true, listing[0]["is_favorite"])
}

func TestUploadMissingTitleLeavesNoOrphanBlob(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "a@x.com")

	w := uploadFile(t, a, token, map[string]string{
		"subject":  "Math",
		"fileType": "PDF",
	}, "notes.pdf", "file contents")
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode(t, w)
	details := resp["details"].(map[string]any)
	assert.Contains(t, details, "title")
	assert.NotContains(t, details, "subject")

	entries, err := os.ReadDir(a.Store.Root)
	require.NoError(t, err)
	assert.Empty(t, entries, "staged blob must be deleted as compensation")

	var count int64
	require.NoError(t, a.DB.Model(model.File{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUploadWithoutFile(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "a@x.com")

	w := doJSON(t, a, http.MethodPost, "/api/files/upload", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFileDeleteOwnership(t *testing.T) {
	a := newTestAPI(t)

	_, ownerToken := registerUser(t, a, "owner@x.com")
	_, strangerToken := registerUser(t, a, "stranger@x.com")
	adminID, adminToken := registerUser(t, a, "admin@x.com")
	makeAdmin(t, a, adminID)

	file := mustUpload(t, a, ownerToken, "Math", "Notes")

	// Stranger: rejected, row and blob untouched
	w := doJSON(t, a, http.MethodDelete, fmt.Sprintf("/api/files/%d", file.ID), strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, a.DB.Model(model.File{}).Where("id = ?", file.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.True(t, a.Store.Exists(file.StoredName))

	// Owner: row and blob both removed
	w = doJSON(t, a, http.MethodDelete, fmt.Sprintf("/api/files/%d", file.ID), ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, a.DB.Model(model.File{}).Where("id = ?", file.ID).Count(&count).Error)
	assert.Zero(t, count)
	assert.False(t, a.Store.Exists(file.StoredName))

	// Admin can delete someone else's file
	file2 := mustUpload(t, a, ownerToken, "Math", "More notes")

	w = doJSON(t, a, http.MethodDelete, fmt.Sprintf("/api/files/%d", file2.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, a.Store.Exists(file2.StoredName))
}

func TestFileDeleteRemovesFavorites(t *testing.T) {
	a := newTestAPI(t)

	_, ownerToken := registerUser(t, a, "owner@x.com")
	file := mustUpload(t, a, ownerToken, "Math", "Notes")

	w := doJSON(t, a, http.MethodPost, fmt.Sprintf("/api/files/%d/favorite", file.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodDelete, fmt.Sprintf("/api/files/%d", file.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, a.DB.Model(model.Favorite{}).Where("file_id = ?", file.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFavoriteToggleParity(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "a@x.com")
	file := mustUpload(t, a, token, "Math", "Notes")

	toggle := func() {
		w := doJSON(t, a, http.MethodPost, fmt.Sprintf("/api/files/%d/favorite", file.ID), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	favCount := func() int64 {
		var count int64
		require.NoError(t, a.DB.Model(model.Favorite{}).Where("file_id = ?", file.ID).Count(&count).Error)
		return count
	}

	toggle()
	toggle()
	assert.Zero(t, favCount(), "even number of toggles returns to absence")

	toggle()
	toggle()
	toggle()
	assert.EqualValues(t, 1, favCount(), "odd number of toggles leaves it present")
}

func TestFavoriteToggleMissingFile(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "a@x.com")

	w := doJSON(t, a, http.MethodPost, "/api/files/999/favorite", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadServesOriginalName(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "a@x.com")
	file := mustUpload(t, a, token, "Math", "Notes")

	w := doJSON(t, a, http.MethodGet, "/api/files/"+file.StoredName, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "file contents", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "notes.pdf")
}

func TestDownloadDistinguishesMissingBlob(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "a@x.com")

	w := doJSON(t, a, http.MethodGet, "/api/files/nosuchblob.pdf", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", decode(t, w)["error"])

	file := mustUpload(t, a, token, "Math", "Notes")
	require.NoError(t, a.Store.Delete(file.StoredName))

	w = doJSON(t, a, http.MethodGet, "/api/files/"+file.StoredName, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found on server", decode(t, w)["error"])
}

func TestMyUploadsAndFavoritesListings(t *testing.T) {
	a := newTestAPI(t)

	_, aliceToken := registerUser(t, a, "alice@x.com")
	_, bobToken := registerUser(t, a, "bob@x.com")

	aliceFile := mustUpload(t, a, aliceToken, "Math", "Alice notes")
	mustUpload(t, a, bobToken, "Math", "Bob notes")

	w := doJSON(t, a, http.MethodGet, "/api/files/myuploads", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listing := decodeList(t, w)
	require.Len(t, listing, 1)
	assert.Equal(t, "Alice notes", listing[0]["title"])

	// Favoriting someone else's file is allowed
	w = doJSON(t, a, http.MethodPost, fmt.Sprintf("/api/files/%d/favorite", aliceFile.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/files/favorites", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listing = decodeList(t, w)
	require.Len(t, listing, 1)
	assert.Equal(t, "Alice notes", listing[0]["title"])
	assert.Equal(t, true, listing[0]["is_favorite"])

	w = doJSON(t, a, http.MethodGet, "/api/files/all", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}
