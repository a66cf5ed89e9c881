package restclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymwear/storeadmin/internal/domain"
	"github.com/gymwear/storeadmin/internal/restclient"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *restclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return restclient.New(srv.URL, 5*time.Second)
}

func TestResourceList(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"parentId":null,"name":"Shoes"},{"id":2,"parentId":1,"name":"Running"}]`))
	})

	rows, err := restclient.NewResource[domain.Category](c, "categories").List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Shoes", rows[0].Name)
	assert.Nil(t, rows[0].ParentID)
	require.NotNil(t, rows[1].ParentID)
	assert.Equal(t, int64(1), *rows[1].ParentID)
}

func TestResourceGet(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"name":"Ana","email":"ana@gymwear.com","role":"staff"}`))
	})

	u, err := restclient.NewResource[domain.User](c, "users").Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
}

func TestResourceCreateSendsJSONAndOmitsBlankOptionals(t *testing.T) {
	var gotBody map[string]json.RawMessage
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/categories", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		_, _ = w.Write([]byte(`{"id":10,"name":"Running Shoes","slug":"running-shoes"}`))
	})

	slug := "running-shoes"
	payload := domain.Category{Name: "Running Shoes", Slug: &slug}
	created, err := restclient.NewResource[domain.Category](c, "categories").Create(context.Background(), payload)
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, int64(10), *created.ID)

	assert.Contains(t, gotBody, "name")
	assert.Contains(t, gotBody, "slug")
	assert.NotContains(t, gotBody, "description", "blank optional fields must be omitted")
	assert.NotContains(t, gotBody, "id")
}

func TestResourceUpdate(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/products/3", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":3,"name":"Mat","category":{"id":1,"name":"Gear"}}`))
	})

	p, err := restclient.NewResource[domain.Product](c, "products").Update(context.Background(), 3, domain.Product{Name: "Mat"})
	require.NoError(t, err)
	assert.Equal(t, "Gear", p.Category.Name)
}

func TestResourceDelete(t *testing.T) {
	var called bool
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/orders/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := restclient.NewResource[domain.Order](c, "orders").Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestNon2xxBecomesStatusError(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := restclient.NewResource[domain.Category](c, "categories").List(context.Background())
	require.Error(t, err)

	var statusErr *restclient.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestTransportErrorSurfaces(t *testing.T) {
	c := restclient.New("http://127.0.0.1:1", time.Second)
	_, err := restclient.NewResource[domain.Category](c, "categories").List(context.Background())
	require.Error(t, err)

	var statusErr *restclient.StatusError
	assert.False(t, errors.As(err, &statusErr), "transport failures are not StatusError")
}

func TestOrdersFetchReceipt(t *testing.T) {
	pdf := []byte("%PDF-1.4 receipt")
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/orders/9/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	})

	data, err := restclient.NewOrders(c).FetchReceipt(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestOrdersSendReceiptEmail(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders/9/email", r.URL.Path)
		_, _ = w.Write([]byte("Correo enviado"))
	})

	msg, err := restclient.NewOrders(c).SendReceiptEmail(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Correo enviado", msg)
}
