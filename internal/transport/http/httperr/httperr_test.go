package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/productsapp/orders-svc/internal/service/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) body {
	t.Helper()
	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))

	return b
}

func TestWrite_ServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Write(rec, req, errs.NotFoundf("Order with id %s not found", "abc"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	b := decode(t, rec)
	assert.Equal(t, http.StatusNotFound, b.Status)
	assert.Equal(t, "Order with id abc not found", b.Message)
}

func TestWrite_PlainErrorDefaultsTo400(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Write(rec, req, errors.New("boom"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	b := decode(t, rec)
	assert.Equal(t, http.StatusBadRequest, b.Status)
	assert.Equal(t, "boom", b.Message)
}

func TestWrite_UnusableStatusDefaultsTo400(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Write(rec, req, errs.New(0, "weird"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	b := decode(t, rec)
	assert.Equal(t, http.StatusBadRequest, b.Status)
	assert.Equal(t, "weird", b.Message)
}
