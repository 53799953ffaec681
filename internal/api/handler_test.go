package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaito5551995/slack-estimate-bot/internal/canvas"
	"github.com/kaito5551995/slack-estimate-bot/internal/generator"
	"github.com/kaito5551995/slack-estimate-bot/internal/layout"
	"github.com/kaito5551995/slack-estimate-bot/internal/models"
	"github.com/kaito5551995/slack-estimate-bot/internal/render"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	engine := layout.NewEngine(layout.DefaultParams(), layout.Issuer{Name: "株式会社ミナト安全施設"}, logger)
	factory := func() canvas.Canvas { return canvas.NewPDF(canvas.Options{}) }
	gen := generator.NewGenerator(engine, factory, logger)
	h := NewHandler(gen, render.NewExcelRenderer("株式会社ミナト安全施設", logger), logger)

	r := gin.New()
	r.POST("/api/v1/documents", h.CreateDocument)
	return r
}

func postDocument(t *testing.T, r *gin.Engine, path string, sub models.Submission) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(sub)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validSubmission() models.Submission {
	return models.Submission{
		ClientCompany: "株式会社テスト商事",
		ClientPerson:  "山田太郎",
		ItemsText:     "コーン標識,10個,3500円\n諸経費,7%\n法定福利費",
		DocumentType:  "invoice",
	}
}

func TestCreateDocumentPDF(t *testing.T) {
	r := newTestRouter()

	w := postDocument(t, r, "/api/v1/documents", validSubmission())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Invoice_")
	assert.Equal(t, "3", w.Header().Get("X-Item-Count"))

	// 35000 taxable, +2450 surcharge, +5775 levy = 43225; +4322 tax.
	assert.Equal(t, "47547", w.Header().Get("X-Grand-Total"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestCreateDocumentXLSX(t *testing.T) {
	r := newTestRouter()

	w := postDocument(t, r, "/api/v1/documents?format=xlsx", validSubmission())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Equal(t, "3", w.Header().Get("X-Item-Count"))
	assert.NotZero(t, w.Body.Len())
}

func TestCreateDocumentUnsupportedFormat(t *testing.T) {
	r := newTestRouter()

	w := postDocument(t, r, "/api/v1/documents?format=docx", validSubmission())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDocumentMissingRequiredFields(t *testing.T) {
	r := newTestRouter()

	sub := validSubmission()
	sub.ItemsText = ""
	w := postDocument(t, r, "/api/v1/documents", sub)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDocumentNoParsableItems(t *testing.T) {
	r := newTestRouter()

	sub := validSubmission()
	sub.ItemsText = "  \n\t \n"
	w := postDocument(t, r, "/api/v1/documents", sub)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDocumentMalformedJSON(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
