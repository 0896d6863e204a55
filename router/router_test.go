package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pasture/database"
	authCtrlImp "pasture/pkg/auth/controllerImp"
	editorCtrlImp "pasture/pkg/editor/controllerImp"
	editorService "pasture/pkg/editor/service"
	editorSvcImp "pasture/pkg/editor/serviceImp"
	healthCtrlImp "pasture/pkg/health/controllerImp"
	"pasture/pkg/layout/repository"
	layoutRepoImp "pasture/pkg/layout/repositoryImp"
	"pasture/pkg/mapeditor"
	paddockCtrlImp "pasture/pkg/paddock/controllerImp"
	paddockRepoImp "pasture/pkg/paddock/repositoryImp"
	paddockService "pasture/pkg/paddock/service"
	paddockSvcImp "pasture/pkg/paddock/serviceImp"
)

type stack struct {
	e        *echo.Echo
	db       *gorm.DB
	paddocks paddockService.PaddockService
	sessions editorService.SessionService
}

func newStack(t *testing.T) *stack {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", false)
	require.NoError(t, err)

	psvc := paddockSvcImp.NewPaddockService(paddockRepoImp.New(db), nil)
	stores := func(owner string) (repository.Store, error) { return layoutRepoImp.NewSQLite(db, owner), nil }
	sessions := editorSvcImp.New(stores, paddockSvcImp.NewEditorSource(psvc), nil)

	e := New(echo.New(), false,
		editorCtrlImp.New(sessions, nil),
		paddockCtrlImp.New(psvc, nil),
		authCtrlImp.NewAuthController(),
		healthCtrlImp.NewHealthCtrl(db, sessions),
	)
	return &stack{e: e, db: db, paddocks: psvc, sessions: sessions}
}

type envelope struct {
	OK            bool                     `json:"ok"`
	Result        json.RawMessage          `json:"result"`
	Notifications []mapeditor.Notification `json:"notifications"`
}

type commandResult struct {
	Feature  mapeditor.FeatureID `json:"feature"`
	Count    int                 `json:"count"`
	Snapshot mapeditor.Snapshot  `json:"snapshot"`
}

func (s *stack) call(t *testing.T, uid, method, path, body string) (envelope, commandResult) {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	r.AddCookie(&http.Cookie{Name: "PASTURE_UID", Value: uid})
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var res commandResult
	if method == http.MethodPost {
		require.NoError(t, json.Unmarshal(env.Result, &res))
	}
	return env, res
}

func TestMapSessionLifecycle(t *testing.T) {
	s := newStack(t)
	ctx := testContext(t)
	for _, in := range []paddockService.CreateInput{{Name: "El Bajo", Hectares: 8}, {Name: "La Loma", Hectares: 12.5}} {
		_, err := s.paddocks.Create(ctx, in)
		require.NoError(t, err)
	}

	env, _ := s.call(t, "ana", http.MethodGet, "/map", "")
	assert.True(t, env.OK)
	assert.NotNil(t, env.Notifications)
	var snap mapeditor.Snapshot
	require.NoError(t, json.Unmarshal(env.Result, &snap))
	require.Len(t, snap.Paddocks, 2)
	assert.Equal(t, "El Bajo", snap.Paddocks[0].Name)
	assert.Equal(t, [2]int{2, 2}, [2]int{snap.Paddocks[0].Row, snap.Paddocks[0].Col})

	env, res := s.call(t, "ana", http.MethodPost, "/map/features", `{"type":"bebedero","row":0,"col":0}`)
	assert.True(t, env.OK)
	assert.NotEmpty(t, res.Feature)
	assert.Equal(t, "Bebedero agregado al mapa", env.Notifications[0].Message)

	env, _ = s.call(t, "ana", http.MethodPost, "/map/features", `{"type":"cerca","row":0,"col":0}`)
	assert.False(t, env.OK)
	assert.Equal(t, mapeditor.LevelWarning, env.Notifications[0].Level)

	id := snap.Paddocks[1].ID
	env, _ = s.call(t, "ana", http.MethodPost, "/map/drag/start",
		`{"paddock":`+id.String()+`,"x":50,"y":50,"surface":{"left":0,"top":0,"width":400,"height":400}}`)
	require.True(t, env.OK)
	env, _ = s.call(t, "ana", http.MethodPost, "/map/drag/move", `{"x":210,"y":130}`)
	require.True(t, env.OK)
	_, res = s.call(t, "ana", http.MethodPost, "/map/drag/end", "")
	p, _ := res.Snapshot.PaddockByID(id)
	assert.Equal(t, [2]int{6, 10}, [2]int{p.Row, p.Col})

	env, _ = s.call(t, "ana", http.MethodPost, "/map/save", "")
	assert.True(t, env.OK)

	// another user gets a fresh map
	env, _ = s.call(t, "bob", http.MethodGet, "/map", "")
	require.NoError(t, json.Unmarshal(env.Result, &snap))
	assert.Zero(t, snap.Stats.TotalFeatures)
	assert.Equal(t, 2, s.sessions.Len())
}

func TestMapSessionRestoresSavedLayout(t *testing.T) {
	s := newStack(t)
	_, err := s.paddocks.Create(testContext(t), paddockService.CreateInput{Name: "Vega", Hectares: 3})
	require.NoError(t, err)

	s.call(t, "ana", http.MethodPost, "/map/tool", `{"tool":"arbol"}`)
	_, res := s.call(t, "ana", http.MethodPost, "/map/cells/9/9/click", "")
	assert.Equal(t, mapeditor.Tree, res.Snapshot.At(9, 9).Type)
	s.call(t, "ana", http.MethodPost, "/map/save", "")

	// a new server process over the same database
	fresh := editorSvcImp.New(
		func(owner string) (repository.Store, error) { return layoutRepoImp.NewSQLite(s.db, owner), nil },
		paddockSvcImp.NewEditorSource(s.paddocks), nil)
	d, notes, err := fresh.Session(testContext(t), "ana")
	require.NoError(t, err)
	assert.Contains(t, notes, mapeditor.Notification{Level: mapeditor.LevelInfo, Message: "Mapa cargado correctamente"})
	assert.Equal(t, 1, d.Snapshot().Stats.Features[mapeditor.Tree])
}

func TestMapDeleteSelectedPaddock(t *testing.T) {
	s := newStack(t)
	p, err := s.paddocks.Create(testContext(t), paddockService.CreateInput{Name: "Vega", Hectares: 3})
	require.NoError(t, err)

	env, _ := s.call(t, "ana", http.MethodPost, "/map/delete", "")
	assert.False(t, env.OK)

	env, _ = s.call(t, "ana", http.MethodPost, "/map/paddocks/"+mapeditor.PaddockID(p.ID).String()+"/select", "")
	require.True(t, env.OK)
	env, res := s.call(t, "ana", http.MethodPost, "/map/delete", "")
	assert.True(t, env.OK)
	assert.Empty(t, res.Snapshot.Paddocks)

	list, err := s.paddocks.List(testContext(t))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMapExport(t *testing.T) {
	s := newStack(t)
	r := httptest.NewRequest(http.MethodGet, "/map/export.xlsx", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "mapa-potreros.xlsx")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"), "xlsx is a zip archive")
}

func TestBadRequests(t *testing.T) {
	s := newStack(t)
	for _, path := range []string{"/map/cells/a/1/click", "/map/paddocks/x/select", "/potreros/x/delete"} {
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestHealth(t *testing.T) {
	s := newStack(t)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sessions":0`)
}

func TestMapSurfaceDrivesDragMapping(t *testing.T) {
	s := newStack(t)
	created, err := s.paddocks.Create(testContext(t), paddockService.CreateInput{Name: "El Bajo", Hectares: 8})
	require.NoError(t, err)
	id := mapeditor.PaddockID(created.ID)

	env, _ := s.call(t, "ana", http.MethodPost, "/map/surface", `{"left":100,"top":100,"width":200,"height":200}`)
	require.True(t, env.OK)

	// 10px cells starting at (100,100); the paddock sits at (2,2).
	env, res := s.call(t, "ana", http.MethodPost, "/map/drag/start", `{"paddock":`+id.String()+`,"x":125,"y":125}`)
	require.True(t, env.OK)
	require.NotNil(t, res.Snapshot.Drag)
	env, _ = s.call(t, "ana", http.MethodPost, "/map/drag/move", `{"x":205,"y":145}`)
	require.True(t, env.OK)
	_, res = s.call(t, "ana", http.MethodPost, "/map/drag/end", "")
	p, ok := res.Snapshot.PaddockByID(id)
	require.True(t, ok)
	assert.Equal(t, [2]int{4, 10}, [2]int{p.Row, p.Col})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/map/surface", strings.NewReader(`{"width":0,"height":200}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	s.e.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// testContext returns a context canceled when the test finishes
// (stand-in for testing.T.Context, which needs Go 1.24).
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
