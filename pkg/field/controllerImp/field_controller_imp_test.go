package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/UmashankarGouda/KrishiChakra/entities"
	fieldRepoImp "github.com/UmashankarGouda/KrishiChakra/pkg/field/repositoryImp"
)

func testCtrl(t *testing.T) *FieldCtrl {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.FieldBatch{}))
	return New(fieldRepoImp.New(db))
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body, uid, paramID string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", uid)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	require.NoError(t, h(c))
	return rec
}

func TestCreateField(t *testing.T) {
	h := testCtrl(t)

	rec := doJSON(t, h.Create, http.MethodPost, "/fields",
		`{"name":"North plot","location":"Nagpur","soil_type":"black","size":2.5}`, "u1", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var f entities.FieldBatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.True(t, strings.HasPrefix(f.ID, "field_"))
	assert.Equal(t, "u1", f.UserID)
	assert.Equal(t, "planning", f.Status)
	assert.Equal(t, 2.5, f.Size)
}

func TestCreateFieldValidation(t *testing.T) {
	h := testCtrl(t)

	rec := doJSON(t, h.Create, http.MethodPost, "/fields", `{"size":2.5}`, "u1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h.Create, http.MethodPost, "/fields", `{"name":"x","size":0}`, "u1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateFieldPatchesNonZeroFields(t *testing.T) {
	h := testCtrl(t)

	rec := doJSON(t, h.Create, http.MethodPost, "/fields",
		`{"name":"North plot","location":"Nagpur","size":2.5}`, "u1", "")
	var f entities.FieldBatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))

	rec = doJSON(t, h.Update, http.MethodPut, "/fields/"+f.ID,
		`{"status":"active","current_crop":"Cotton"}`, "u1", f.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.FieldBatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, "Cotton", got.CurrentCrop)
	// untouched fields survive
	assert.Equal(t, "North plot", got.Name)
	assert.Equal(t, 2.5, got.Size)
}

func TestGetFieldWrongOwner(t *testing.T) {
	h := testCtrl(t)

	rec := doJSON(t, h.Create, http.MethodPost, "/fields", `{"name":"mine","size":1}`, "u1", "")
	var f entities.FieldBatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))

	rec = doJSON(t, h.Get, http.MethodGet, "/fields/"+f.ID, "", "u2", f.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteField(t *testing.T) {
	h := testCtrl(t)

	rec := doJSON(t, h.Create, http.MethodPost, "/fields", `{"name":"mine","size":1}`, "u1", "")
	var f entities.FieldBatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))

	rec = doJSON(t, h.Delete, http.MethodDelete, "/fields/"+f.ID, "", "u1", f.ID)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h.Get, http.MethodGet, "/fields/"+f.ID, "", "u1", f.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
