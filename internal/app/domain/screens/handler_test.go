package screens

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain/mappane"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/middleware"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/session"
)

type screenFixture struct {
	router  *gin.Engine
	sess    *session.Session
	loader  *mappane.Loader
	sdkHits *atomic.Int64
}

func newFixture(t *testing.T, sdkStatus int) *screenFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var hits atomic.Int64
	sdk := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/javascript")
		w.WriteHeader(sdkStatus)
		_, _ = w.Write([]byte("window.google = {};"))
	}))
	t.Cleanup(sdk.Close)

	mapCfg := mappane.Config{
		APIKey:        "maps-key",
		ScriptURL:     sdk.URL + "/maps/api/js",
		DefaultZoom:   11,
		DefaultCenter: models.LatLng{Lat: 38.72, Lng: -9.14},
	}
	loader := mappane.NewLoader(mapCfg, sdk.Client(), zap.NewNop())
	handlers := NewScreenHandlers(domain.NewBaseHandler(zap.NewNop(), mapCfg), NewRouter(zap.NewNop()), loader)
	sess := session.New("screen-test", mapCfg)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, sess)
		c.Next()
	})
	r.GET("/", handlers.ShowHome)
	r.GET("/chat", handlers.ShowChat)
	r.GET("/planner", handlers.ShowPlanner)
	r.GET("/map", handlers.ShowMap)
	r.GET("/screens/:name", handlers.ShowScreen)
	r.GET("/pins", handlers.GetPins)

	return &screenFixture{router: r, sess: sess, loader: loader, sdkHits: &hits}
}

func (f *screenFixture) get(path string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestFullPageLoad(t *testing.T) {
	f := newFixture(t, http.StatusOK)

	w := f.get("/chat", false)
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, "Chat - Travel Assistant", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("#screen #chat-screen").Length())
	assert.Equal(t, "/maps/sdk.js", doc.Find("#map-pane").AttrOr("data-sdk-url", ""))
	_, hidden := doc.Find("#map-pane").Attr("hidden")
	assert.True(t, hidden)
}

func TestHTMXNavigation(t *testing.T) {
	f := newFixture(t, http.StatusOK)

	w := f.get("/planner", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("HX-Trigger"), domain.EventScreenChanged)
	assert.Contains(t, w.Header().Get("HX-Trigger"), `"screen":"planner"`)
	assert.NotContains(t, w.Body.String(), "<html")
	assert.Contains(t, w.Body.String(), `id="planner-screen"`)
	assert.Equal(t, models.ScreenPlanner, f.sess.Snapshot().Screen)
}

func TestMapReentry(t *testing.T) {
	f := newFixture(t, http.StatusOK)
	f.sess.Update(func(st *session.State) {
		st.ReplacePins([]models.Pin{{Lat: 41.15, Lng: -8.61, Label: "Porto"}})
	})

	w := f.get("/map", true)
	require.Equal(t, http.StatusOK, w.Code)
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	instanceID := doc.Find("#map-screen").AttrOr("data-instance-id", "")
	require.NotEmpty(t, instanceID)
	assert.Equal(t, "Porto", doc.Find("#pin-list .pin-label").Text())
	assert.Equal(t, 0, doc.Find("#map-failed").Length())

	f.get("/chat", true)
	assert.False(t, f.sess.Snapshot().Map.Mounted)

	w = f.get("/map", true)
	doc, err = goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, instanceID, doc.Find("#map-screen").AttrOr("data-instance-id", ""))

	view := f.sess.Snapshot().Map
	assert.True(t, view.Mounted)
	assert.Equal(t, 1, view.InstancesCreated)
	assert.Equal(t, 1, f.loader.Fetches())
	assert.Equal(t, int64(1), f.sdkHits.Load())
	assert.Equal(t, mappane.StateReady, f.loader.State())
}

func TestHistoryRestore(t *testing.T) {
	t.Run("a snapshot restore re-syncs the server through the screen endpoint", func(t *testing.T) {
		f := newFixture(t, http.StatusOK)

		w := f.get("/map", true)
		doc, err := goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)
		instanceID := doc.Find("#map-screen").AttrOr("data-instance-id", "")
		require.NotEmpty(t, instanceID)

		f.get("/chat", true)
		require.False(t, f.sess.Snapshot().Map.Mounted)

		// Back to the map: the restored #screen carries data-screen="map".
		restored := doc.Find("[data-screen]").First().AttrOr("data-screen", "")
		require.Equal(t, "map", restored)

		w = f.get("/screens/"+restored, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("HX-Trigger"), `"screen":"map"`)

		doc, err = goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)
		assert.Equal(t, instanceID, doc.Find("#map-screen").AttrOr("data-instance-id", ""))

		snap := f.sess.Snapshot()
		assert.Equal(t, models.ScreenMap, snap.Screen)
		assert.True(t, snap.Map.Mounted)
		assert.Equal(t, 1, snap.Map.InstancesCreated)
	})

	t.Run("a cache miss gets the fragment with its screen identity", func(t *testing.T) {
		f := newFixture(t, http.StatusOK)
		f.get("/map", true)

		req := httptest.NewRequest(http.MethodGet, "/chat", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-History-Restore-Request", "true")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<html")
		doc, err := goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "chat", doc.Find("#chat-screen").AttrOr("data-screen", ""))

		snap := f.sess.Snapshot()
		assert.Equal(t, models.ScreenChat, snap.Screen)
		assert.False(t, snap.Map.Mounted)
	})
}

func TestMapSDKFailure(t *testing.T) {
	f := newFixture(t, http.StatusInternalServerError)

	for i := 0; i < 2; i++ {
		w := f.get("/map", true)
		require.Equal(t, http.StatusOK, w.Code)
		doc, err := goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Find("#map-failed").Length())
		f.get("/", true)
	}

	assert.Equal(t, int64(1), f.sdkHits.Load())
	assert.Equal(t, mappane.StateFailed, f.loader.State())
}

func TestUnknownScreen(t *testing.T) {
	f := newFixture(t, http.StatusOK)

	w := f.get("/screens/settings", true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.get("/screens/map", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ScreenMap, f.sess.Snapshot().Screen)
}

func TestGetPins(t *testing.T) {
	f := newFixture(t, http.StatusOK)

	w := f.get("/pins", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pins":[],"mounted":false}`, w.Body.String())

	f.sess.Update(func(st *session.State) {
		st.ReplacePins([]models.Pin{{Lat: 1, Lng: 2, Label: "A", Icon: "pin"}})
	})
	w = f.get("/pins", false)

	var body struct {
		Pins []models.Pin `json:"pins"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []models.Pin{{Lat: 1, Lng: 2, Label: "A", Icon: "pin"}}, body.Pins)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
