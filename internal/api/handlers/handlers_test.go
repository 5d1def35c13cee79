package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/config"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/feria"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	dataset := model.Dataset{
		model.Monday: {
			{Name: "Feria Centro", Location: "Minas y Cerro Largo", Neighborhood: "centro", Lat: 10, Lng: 20},
		},
		model.Wednesday: {
			{Name: "Feria Centro", Location: "Minas y Cerro Largo", Neighborhood: "centro", Lat: 10, Lng: 20},
		},
		model.Friday: {
			{Name: "Feria Pocitos", Location: "Av. Rivera", Neighborhood: "pocitos", Lat: 11, Lng: 21},
			{Name: "Feria Punta Carretas", Location: "Vázquez Ledesma", Neighborhood: "punta-carretas", Lat: 12, Lng: 22},
		},
	}

	view := feria.NewView(dataset)
	tables := model.DefaultDayTables()

	marketHandler := NewMarketHandler(view, tables)
	dayHandler := NewDayHandler(tables)
	viewportHandler := NewViewportHandler(config.DefaultMap())

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/markers", marketHandler.ListMarkers)
	api.GET("/markets", marketHandler.ListMarkets)
	api.GET("/neighborhoods", marketHandler.ListNeighborhoods)
	api.GET("/days", dayHandler.ListDays)
	api.GET("/map", viewportHandler.GetViewport)
	return router
}

func get(t *testing.T, router *gin.Engine, url string) (int, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestListMarkers_FiltersByDay(t *testing.T) {
	router := testRouter()

	code, body := get(t, router, "/api/v1/markers?day=friday")
	require.Equal(t, http.StatusOK, code)

	var markers []struct {
		Name      string   `json:"name"`
		Days      []string `json:"days"`
		PopupHTML string   `json:"popup_html"`
		Icon      struct {
			Width  int    `json:"width"`
			Height int    `json:"height"`
			Color  string `json:"color"`
			URL    string `json:"url"`
		} `json:"icon"`
	}
	require.NoError(t, json.Unmarshal(body["markers"], &markers))

	require.Len(t, markers, 2)
	assert.Equal(t, "Feria Pocitos", markers[0].Name)
	assert.Equal(t, 25, markers[0].Icon.Width)
	assert.Equal(t, 41, markers[0].Icon.Height)
	assert.Contains(t, markers[0].PopupHTML, "Pocitos")
}

func TestListMarkers_DayAndNeighborhood(t *testing.T) {
	router := testRouter()

	code, body := get(t, router, "/api/v1/markers?day=friday&neighborhood=pocitos")
	require.Equal(t, http.StatusOK, code)

	var count int
	require.NoError(t, json.Unmarshal(body["count"], &count))
	assert.Equal(t, 1, count)
}

func TestListMarkers_DefaultAllDayIsEmpty(t *testing.T) {
	// No query params: day defaults to "all", which matches no day set.
	router := testRouter()

	code, body := get(t, router, "/api/v1/markers")
	require.Equal(t, http.StatusOK, code)

	var count int
	require.NoError(t, json.Unmarshal(body["count"], &count))
	assert.Equal(t, 0, count)
}

func TestListMarkets_MergedDays(t *testing.T) {
	router := testRouter()

	code, body := get(t, router, "/api/v1/markets?day=monday")
	require.Equal(t, http.StatusOK, code)

	var markets []struct {
		Name string   `json:"name"`
		Days []string `json:"days"`
	}
	require.NoError(t, json.Unmarshal(body["markets"], &markets))

	require.Len(t, markets, 1)
	assert.Equal(t, "Feria Centro", markets[0].Name)
	assert.Equal(t, []string{"monday", "wednesday"}, markets[0].Days)
}

func TestListDays_WeekOrderWithLabelsAndColors(t *testing.T) {
	router := testRouter()

	code, body := get(t, router, "/api/v1/days")
	require.Equal(t, http.StatusOK, code)

	var days []struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Color string `json:"color"`
	}
	require.NoError(t, json.Unmarshal(body["days"], &days))

	require.Len(t, days, 7)
	assert.Equal(t, "monday", days[0].ID)
	assert.Equal(t, "Lunes", days[0].Label)
	assert.Equal(t, "sunday", days[6].ID)
	for _, d := range days {
		assert.NotEmpty(t, d.Color)
	}
}

func TestListNeighborhoods_HumanizedLabels(t *testing.T) {
	router := testRouter()

	code, body := get(t, router, "/api/v1/neighborhoods")
	require.Equal(t, http.StatusOK, code)

	var hoods []struct {
		Slug  string `json:"slug"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(body["neighborhoods"], &hoods))

	require.Len(t, hoods, 3)
	bySlug := map[string]string{}
	for _, h := range hoods {
		bySlug[h.Slug] = h.Label
	}
	assert.Equal(t, "Punta Carretas", bySlug["punta-carretas"])
	assert.Equal(t, "Centro", bySlug["centro"])
}

func TestGetViewport(t *testing.T) {
	router := testRouter()

	code, body := get(t, router, "/api/v1/map")
	require.Equal(t, http.StatusOK, code)

	var m config.MapConfig
	require.NoError(t, json.Unmarshal(body["map"], &m))

	assert.Equal(t, config.DefaultMap().CenterLat, m.CenterLat)
	assert.Equal(t, config.DefaultMap().Zoom, m.Zoom)
	assert.NotEmpty(t, m.TileURL)
}
