package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amaumene/mellab/internal/config"
	"github.com/sirupsen/logrus"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return NewClient(&config.Config{TMDBBaseURL: server.URL, TMDBAPIKey: "secret"}, logger)
}

func TestSearchMulti(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/multi" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "secret" {
			t.Errorf("API key not sent")
		}
		if r.URL.Query().Get("query") != "Now You See Me" {
			t.Errorf("Query not sent verbatim: %s", r.URL.Query().Get("query"))
		}
		if r.URL.Query().Get("page") != "3" {
			t.Errorf("Expected page 3, got %s", r.URL.Query().Get("page"))
		}
		w.Write([]byte(`{"page":3,"total_pages":5,"results":[
			{"id":75656,"media_type":"movie","title":"Now You See Me","release_date":"2013-05-29","popularity":40.5},
			{"id":1399,"media_type":"tv","name":"Game of Thrones","first_air_date":"2011-04-17","popularity":300}
		]}`))
	})

	resp, err := client.SearchMulti(context.Background(), "Now You See Me", 3)
	if err != nil {
		t.Fatalf("SearchMulti failed: %v", err)
	}
	if resp.TotalPages != 5 || len(resp.Results) != 2 {
		t.Fatalf("Unexpected response: %+v", resp)
	}
	if resp.Results[0].DisplayTitle() != "Now You See Me" || resp.Results[0].Date() != "2013-05-29" {
		t.Errorf("Movie accessors mismatch: %+v", resp.Results[0])
	}
	if resp.Results[1].DisplayTitle() != "Game of Thrones" || resp.Results[1].Date() != "2011-04-17" {
		t.Errorf("TV accessors mismatch: %+v", resp.Results[1])
	}
}

func TestGetMovieAppendsBlocks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/27205" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("append_to_response") != movieAppend {
			t.Errorf("Unexpected append_to_response %s", r.URL.Query().Get("append_to_response"))
		}
		w.Write([]byte(`{"id":27205,"title":"Inception","budget":160000000,
			"belongs_to_collection":null,
			"external_ids":{"imdb_id":"tt1375666"},
			"credits":{"crew":[{"name":"Hans Zimmer","job":"Original Music Composer"}]},
			"keywords":{"keywords":[{"id":1,"name":"dream"}]}}`))
	})

	movie, err := client.GetMovie(context.Background(), "27205")
	if err != nil {
		t.Fatalf("GetMovie failed: %v", err)
	}
	if movie.Title != "Inception" || movie.Budget != 160000000 {
		t.Errorf("Unexpected movie %+v", movie)
	}
	if movie.ExternalIDs.IMDbID != "tt1375666" {
		t.Errorf("External ids not decoded")
	}
	if movie.BelongsToCollection != nil {
		t.Errorf("Expected no collection")
	}
	if len(movie.Keywords.Keywords) != 1 || len(movie.Credits.Crew) != 1 {
		t.Errorf("Appended blocks not decoded")
	}
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`))
	})

	_, err := client.GetTV(context.Background(), "999999999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestInvalidPageMapsToSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"status_code":22,"status_message":"Invalid page: Pages start at 1 and max at 500."}`))
	})

	_, err := client.SearchMulti(context.Background(), "Batman", 502)
	if !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("Expected ErrInvalidPage, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("Invalid page must not be reported as not found")
	}
}

func TestServerErrorIsReported(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key"}`))
	})

	_, err := client.GetCollection(context.Background(), 10)
	if err == nil {
		t.Fatal("Expected error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("401 must not be reported as not found")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("Status code missing from error: %v", err)
	}
}

func TestRedact(t *testing.T) {
	err := redact(errors.New(`Get "http://x/movie/1?api_key=secret": dial tcp`), "secret")
	if strings.Contains(err.Error(), "secret") {
		t.Errorf("Key leaked: %v", err)
	}
}
