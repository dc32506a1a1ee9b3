package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	mdb "studyvault/edu-api/db"
	"studyvault/edu-api/model"
	"studyvault/edu-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret")
	viper.Set("upload.max_size", int64(10<<20))

	d, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, mdb.Migrate(d))

	st, err := storage.New(t.TempDir())
	require.NoError(t, err)

	return New(d, st)
}

func doJSON(t *testing.T, a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func registerUser(t *testing.T, a *API, email string) (userID, token string) {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/users/register", "", map[string]string{
		"email":     email,
		"password":  "password123",
		"firstName": "Test",
		"lastName":  "User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode(t, w)
	user := resp["user"].(map[string]any)
	return user["id"].(string), resp["token"].(string)
}

func makeAdmin(t *testing.T, a *API, userID string) {
	t.Helper()

	require.NoError(t, a.DB.
		Model(model.User{}).
		Where("id = ?", userID).
		Update("role", model.RoleAdmin).
		Error)
}

// uploadFile posts a multipart upload. Metadata fields come in as a map
// so tests can leave some out
func uploadFile(t *testing.T, a *API, token string, fields map[string]string, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/files/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}
