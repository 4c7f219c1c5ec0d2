package handlers

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldgen-server/internal/layout"
	"fieldgen-server/internal/render"
)

func testHandler(t *testing.T) *FieldHandler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	layouts := layout.NewService(1, 100, logger)
	renderer := render.NewService(logger)

	return NewFieldHandler(layouts, renderer)
}

func doGenerate(t *testing.T, h *FieldHandler, method, challenge, direction string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, "/"+challenge+"/"+direction, nil)
	req.SetPathValue("challenge", challenge)
	req.SetPathValue("direction", direction)

	rec := httptest.NewRecorder()
	h.Generate(rec, req)
	return rec
}

func TestGenerateReturnsFreshPNG(t *testing.T) {
	h := testHandler(t)

	routes := []struct {
		challenge string
		direction string
	}{
		{"qualification", "random"},
		{"qualification-fixed", "cw"},
		{"final", "ccw"},
	}

	for _, route := range routes {
		t.Run(route.challenge+"/"+route.direction, func(t *testing.T) {
			rec := doGenerate(t, h, http.MethodGet, route.challenge, route.direction)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

			img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, 3020, img.Bounds().Dx())
			assert.Equal(t, 3020, img.Bounds().Dy())
		})
	}
}

func TestGenerateRejectsUnknownChallenge(t *testing.T) {
	h := testHandler(t)

	rec := doGenerate(t, h, http.MethodGet, "sprint", "random")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation", body.Error)
	assert.Contains(t, body.Message, "sprint")
	assert.Equal(t, http.StatusBadRequest, body.Code)
}

func TestGenerateRejectsUnknownDirection(t *testing.T) {
	h := testHandler(t)

	rec := doGenerate(t, h, http.MethodGet, "final", "widdershins")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation", body.Error)
	assert.Contains(t, body.Message, "widdershins")
}

func TestGenerateRejectsWrongMethod(t *testing.T) {
	h := testHandler(t)

	rec := doGenerate(t, h, http.MethodPost, "final", "random")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "method_not_allowed", body.Error)
}
