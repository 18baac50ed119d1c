package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/charroster/internal/factory"
	"github.com/mcoot/charroster/internal/storage"
	"github.com/mcoot/charroster/internal/storage/memory"
	"github.com/mcoot/charroster/internal/testutil"
	"github.com/mcoot/charroster/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
}

func newWebTestServer(t *testing.T, store storage.Storage) *webTestServer {
	t.Helper()

	app := factory.NewWithStorage(store, testutil.NopLogger())
	router := web.NewRouter(web.RouterConfig{
		Logger:        app.Logger,
		RosterService: app.RosterService,
	})

	return &webTestServer{t: t, handler: router}
}

func seededStore() *memory.Storage {
	return memory.NewWithLines([]string{
		"Name,Profession,Level,HP,Equipment",
		`"John, Brave",Fighter,1,10,sword|shield|potion`,
		"Jane,Wizard,2,6,staff|robe|book",
		`"<Evil>",Fighter,4,12,`,
	})
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// parseHTML parses the response body as HTML
func parseHTML(t *testing.T, r io.Reader) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(r)
	require.NoError(t, err)
	return doc
}

func TestRosterPage(t *testing.T) {
	ts := newWebTestServer(t, seededStore())

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	doc := parseHTML(t, rr.Body)
	rows := doc.Find("#roster tr.character")
	require.Equal(t, 3, rows.Length())

	first := rows.First()
	assert.Equal(t, "John, Brave", first.Find("td.name").Text())
	assert.Equal(t, "Fighter", first.Find("td.profession").Text())
	assert.Equal(t, "1", first.Find("td.level").Text())
	assert.Equal(t, "10", first.Find("td.hp").Text())
	assert.Equal(t, "sword, shield, potion", first.Find("td.equipment").Text())

	href, ok := first.Find("td.name a").Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/characters/John%2C%20Brave", href)
}

func TestRosterPageEscapesNames(t *testing.T) {
	ts := newWebTestServer(t, seededStore())

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "<Evil>")

	doc := parseHTML(t, rr.Body)
	assert.Equal(t, "<Evil>", doc.Find("#roster tr.character").Last().Find("td.name").Text())
	assert.Equal(t, "none", doc.Find("#roster tr.character").Last().Find("td.equipment").Text())
}

func TestRosterPageFilterByProfession(t *testing.T) {
	ts := newWebTestServer(t, seededStore())

	rr := ts.get("/?profession=Wizard")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(t, rr.Body)
	rows := doc.Find("#roster tr.character")
	require.Equal(t, 1, rows.Length())
	assert.Equal(t, "Jane", rows.Find("td.name").Text())

	value, _ := doc.Find("#profession").Attr("value")
	assert.Equal(t, "Wizard", value)
}

func TestRosterPageEmpty(t *testing.T) {
	ts := newWebTestServer(t, memory.New())

	doc := parseHTML(t, ts.get("/").Body)
	assert.Equal(t, 0, doc.Find("#roster").Length())
	assert.Equal(t, "No characters found.", doc.Find("p.empty").Text())
}

func TestCharacterPage(t *testing.T) {
	ts := newWebTestServer(t, seededStore())

	rr := ts.get("/characters/" + url.PathEscape("john, brave"))
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(t, rr.Body)
	assert.Equal(t, "John, Brave", doc.Find("#character h2.name").Text())
	assert.Equal(t, "1", doc.Find("#character dd.level").Text())
	assert.Equal(t, 3, doc.Find("#character ul.equipment li").Length())
	assert.Contains(t, doc.Find("title").Text(), "John, Brave")
}

func TestCharacterPageNotFound(t *testing.T) {
	ts := newWebTestServer(t, seededStore())

	rr := ts.get("/characters/Nobody")
	require.Equal(t, http.StatusNotFound, rr.Code)

	doc := parseHTML(t, rr.Body)
	assert.Equal(t, "Character not found.", doc.Find("p.error").Text())
}

func TestRosterPageMalformedRoster(t *testing.T) {
	ts := newWebTestServer(t, memory.NewWithLines([]string{"broken"}))

	rr := ts.get("/")
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	doc := parseHTML(t, rr.Body)
	assert.Equal(t, "The roster could not be read.", doc.Find("p.error").Text())
}

func TestCharacterPageNameWithSlash(t *testing.T) {
	ts := newWebTestServer(t, memory.NewWithLines([]string{"AC/DC,Bard,3,7,lute"}))

	doc := parseHTML(t, ts.get("/").Body)
	href, ok := doc.Find("#roster td.name a").Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/characters/AC%2FDC", href)

	rr := ts.get(href)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "AC/DC", parseHTML(t, rr.Body).Find("#character h2.name").Text())
}
