package customer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "customer-manager/internal/domain/customer"
	"customer-manager/internal/infrastructure/remote"
)

type recorded struct {
	method string
	path   string
	body   map[string]any
}

func newServer(t *testing.T, status int, respBody string) (*httptest.Server, *[]recorded) {
	t.Helper()

	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path}
		b, _ := io.ReadAll(r.Body)
		if len(b) > 0 {
			_ = json.Unmarshal(b, &rec.body)
		}
		calls = append(calls, rec)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func newRepo(t *testing.T, baseURL string) domain.Repository {
	t.Helper()
	c, err := remote.New(zap.NewNop(), baseURL, 5*time.Second)
	require.NoError(t, err)
	return NewRepository(c)
}

const twoCustomers = `[
	{"ID":1,"first_name":"Ana","last_name":"Pérez","dni":"12345678","phone":"987654321",
	 "email":"ana@mail.pe","city":"Lima","gender":"F","age":45,"birth_date":"1979-05-02T00:00:00Z","deleted":false},
	{"ID":2,"first_name":"Luis","last_name":"Soto","dni":"87654321","phone":"912345678",
	 "email":"luis@mail.pe","city":"Cusco","gender":"M","birth_date":"1940-01-10","deleted":true}
]`

func TestRepository_List(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK, twoCustomers)
	repo := newRepo(t, srv.URL)

	cs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cs, 2)

	assert.Equal(t, domain.ID(1), cs[0].ID)
	assert.Equal(t, "Pérez", cs[0].LastName)
	assert.Equal(t, domain.NewDate(1979, time.May, 2), cs[0].BirthDate)
	assert.Equal(t, domain.NewDate(1940, time.January, 10), cs[1].BirthDate)
	assert.True(t, cs[1].Deleted)

	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodGet, (*calls)[0].method)
	assert.Equal(t, "/users", (*calls)[0].path)
}

func TestRepository_Get(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK, `{"ID":7,"first_name":"Rosa","birth_date":"1930-02-01"}`)
	repo := newRepo(t, srv.URL)

	c, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.ID(7), c.ID)
	assert.Equal(t, "Rosa", c.FirstName)
	assert.Equal(t, "/users/7", (*calls)[0].path)
}

func TestRepository_CreateOmitsID(t *testing.T) {
	srv, calls := newServer(t, http.StatusCreated, ``)
	repo := newRepo(t, srv.URL)

	err := repo.Create(context.Background(), domain.Customer{
		ID:        99,
		FirstName: "Ana",
		DNI:       "12345678",
		BirthDate: domain.NewDate(1990, time.March, 3),
		Deleted:   true,
	})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	got := (*calls)[0]
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/users", got.path)
	_, hasID := got.body["ID"]
	assert.False(t, hasID)
	assert.Equal(t, "1990-03-03", got.body["birth_date"])
	assert.Equal(t, "12345678", got.body["dni"])
	assert.Equal(t, false, got.body["deleted"])
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK, `{}`)
	repo := newRepo(t, srv.URL)

	require.NoError(t, repo.Update(context.Background(), 5, domain.Customer{City: "Arequipa"}))
	require.NoError(t, repo.Delete(context.Background(), 5))

	require.Len(t, *calls, 2)
	assert.Equal(t, http.MethodPut, (*calls)[0].method)
	assert.Equal(t, "/users/5", (*calls)[0].path)
	assert.Equal(t, float64(5), (*calls)[0].body["ID"])
	assert.Equal(t, "Arequipa", (*calls)[0].body["city"])
	assert.Equal(t, http.MethodDelete, (*calls)[1].method)
	assert.Equal(t, "/users/5", (*calls)[1].path)
}

func TestRepository_InvalidIDNeverHitsNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()
	repo := newRepo(t, srv.URL)

	_, err := repo.Get(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, repo.Update(context.Background(), -1, domain.Customer{}), ErrInvalidID)
	assert.ErrorIs(t, repo.Delete(context.Background(), 0), ErrInvalidID)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestRepository_PropagatesStatusError(t *testing.T) {
	srv, _ := newServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	repo := newRepo(t, srv.URL)

	_, err := repo.List(context.Background())
	require.Error(t, err)

	var se *remote.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
}
