package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasture/database"
	"pasture/pkg/mapeditor"
	"pasture/pkg/paddock/controllerImp"
	"pasture/pkg/paddock/repositoryImp"
	"pasture/pkg/paddock/service"
	"pasture/pkg/paddock/serviceImp"
)

func newBackend(t *testing.T) (*httptest.Server, service.PaddockService) {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", false)
	require.NoError(t, err)
	svc := serviceImp.NewPaddockService(repositoryImp.New(db), nil)
	ctrl := controllerImp.New(svc, nil)

	e := echo.New()
	e.GET("/potreros/api/data", ctrl.List)
	e.POST("/potreros/nuevo", ctrl.Create)
	e.POST("/potreros/:id/delete", ctrl.Delete)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv, svc
}

func TestListAndDeleteAgainstBackend(t *testing.T) {
	srv, svc := newBackend(t)
	ctx := context.Background()
	a, err := svc.Create(ctx, service.CreateInput{Name: "La Loma", Hectares: 12.5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.CreateInput{Name: "El Bajo", Hectares: 8})
	require.NoError(t, err)

	c := New(srv.URL+"/", time.Second, nil)
	recs, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "El Bajo", recs[0].Name)
	assert.Equal(t, mapeditor.PaddockID(a.ID), recs[1].ID)
	assert.Equal(t, "12.5 ha", recs[1].SizeLabel())

	require.NoError(t, c.Delete(ctx, mapeditor.PaddockID(a.ID)))
	recs, err = c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	assert.Error(t, c.Delete(ctx, mapeditor.PaddockID(a.ID)), "second delete is a 404")
}

func TestCreateThroughForm(t *testing.T) {
	srv, svc := newBackend(t)
	form := strings.NewReader("nombre=Rinc%C3%B3n&hectareas=4.25&tipo_pastura=kikuyo")
	resp, err := http.Post(srv.URL+"/potreros/nuevo", "application/x-www-form-urlencoded", form)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rincón", list[0].Name)
	assert.Equal(t, "kikuyo", list[0].PastureType)

	resp, err = http.Post(srv.URL+"/potreros/nuevo", "application/json", strings.NewReader(`{"nombre":"Sin area"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListReportsBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"db down","data":[]}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second, nil).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestListUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, 200*time.Millisecond, nil).List(context.Background())
	assert.Error(t, err)
}

func TestListAcceptsStringIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"7","nombre":"Cañada","hectareas":3}],"total":1}`))
	}))
	defer srv.Close()

	recs, err := New(srv.URL, time.Second, nil).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []mapeditor.PaddockRecord{{ID: 7, Name: "Cañada", Hectares: 3}}, recs)
}
