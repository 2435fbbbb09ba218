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
	kbRepoImp "github.com/UmashankarGouda/KrishiChakra/pkg/kb/repositoryImp"
	kbServiceImp "github.com/UmashankarGouda/KrishiChakra/pkg/kb/serviceImp"
)

func testKBCtrl(t *testing.T) *KBCtrl {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.AgroDocument{}, &entities.AgroChunk{}))
	return New(kbServiceImp.New(kbRepoImp.New(db), nil))
}

func TestIngestTextAndSearch(t *testing.T) {
	h := testKBCtrl(t)
	e := echo.New()

	body := `{"title":"Pulse advisory","tags":"rotation","crop":"Chickpea","text":"Chickpea after rice restores soil nitrogen."}`
	req := httptest.NewRequest(http.MethodPost, "/kb/ingest", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.IngestText(e.NewContext(req, rec)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Doc    entities.AgroDocument `json:"doc"`
		Chunks int                   `json:"chunks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.Chunks)
	assert.Equal(t, "Chickpea", created.Doc.Crop)

	req = httptest.NewRequest(http.MethodGet, "/kb/search?q=soil+nitrogen", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.Search(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var hits []struct {
		Text     string `json:"text"`
		DocTitle string `json:"doc_title"`
		Crop     string `json:"crop"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hits))
	require.NotEmpty(t, hits)
	assert.Contains(t, hits[0].Text, "restores soil nitrogen")
	assert.Equal(t, "Pulse advisory", hits[0].DocTitle)
	assert.Equal(t, "Chickpea", hits[0].Crop)

	req = httptest.NewRequest(http.MethodGet, "/kb/docs", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.ListDocs(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	var docs []entities.AgroDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Pulse advisory", docs[0].Title)
}

func TestIngestTextValidation(t *testing.T) {
	h := testKBCtrl(t)
	e := echo.New()

	for _, body := range []string{
		`{"text":"no title"}`,
		`{"title":"no text"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/kb/ingest", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, h.IngestText(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestIngestURLDomainAllowlist(t *testing.T) {
	h := testKBCtrl(t)
	e := echo.New()

	// empty allowlist rejects every host
	req := httptest.NewRequest(http.MethodPost, "/kb/ingest/url",
		strings.NewReader(`{"url":"https://example.org/page"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.IngestURL(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSearchRequiresQuery(t *testing.T) {
	h := testKBCtrl(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/kb/search", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Search(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
