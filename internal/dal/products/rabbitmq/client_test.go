package productsrabbitmq

import (
	"testing"

	"github.com/productsapp/orders-svc/internal/service/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReply_Products(t *testing.T) {
	body := []byte(`{"products":[
		{"id":1,"name":"Widget","priceCents":1000},
		{"id":2,"name":"Gadget","priceCents":500}
	]}`)

	products, err := decodeReply(body)
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, int64(1000), products[0].PriceCents)
}

func TestDecodeReply_RemoteError(t *testing.T) {
	body := []byte(`{"error":{"status":400,"message":"Some products were not found"}}`)

	_, err := decodeReply(body)

	var svcErr *errs.Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)
	assert.Equal(t, "Some products were not found", svcErr.Message)
}

func TestDecodeReply_MissingField(t *testing.T) {
	body := []byte(`{"products":[{"id":1,"priceCents":1000}]}`)

	_, err := decodeReply(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing name")
}

func TestDecodeReply_MalformedJSON(t *testing.T) {
	_, err := decodeReply([]byte(`not json`))
	require.Error(t, err)
}
