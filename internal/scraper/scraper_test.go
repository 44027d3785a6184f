package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><head>
<script type="application/ld+json">
{"@type":"Physician","name":"Dr. Cardio Patel","medicalSpecialty":"Cardiologist",
 "description":"Heart specialist","priceRange":1500,
 "image":"https://example.com/patel.jpg","url":"https://example.com/dr-patel",
 "address":{"addressLocality":"Mumbai","addressRegion":"West"},
 "geo":{"latitude":19.07,"longitude":72.87},
 "aggregateRating":{"ratingValue":"4.5"}}
</script>
<script type="application/ld+json">{this is not valid json</script>
<script type="application/ld+json">{"@type":"Hospital","name":"General Hospital"}</script>
<script type="application/ld+json">
{"@type":"Physician","name":"Dr. New Joiner","medicalSpecialty":"Dermatologist",
 "description":"Skin care","image":"https://example.com/new.jpg",
 "url":"https://example.com/dr-new"}
</script>
</head><body></body></html>`

func newTestScraper() *Scraper {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return New(&http.Client{Timeout: 5 * time.Second}, log)
}

func TestExtractDoctors(t *testing.T) {
	s := newTestScraper()

	doctors, err := s.ExtractDoctors(strings.NewReader(samplePage))
	require.NoError(t, err)
	// malformed block and non-Physician block are skipped
	require.Len(t, doctors, 2)

	first := doctors[0]
	assert.Equal(t, "Dr. Cardio Patel", first.Name)
	assert.Equal(t, "Cardiologist", first.Specialization)
	assert.Equal(t, 1500, first.PriceRange)
	assert.Equal(t, "Mumbai", first.Address.Locality)
	assert.Equal(t, "West", first.Address.Region)
	assert.Equal(t, "19.07", first.Location.Latitude)
	assert.Equal(t, "72.87", first.Location.Longitude)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.5, *first.Rating)

	second := doctors[1]
	assert.Equal(t, "Dr. New Joiner", second.Name)
	assert.Equal(t, "Dermatologist", second.Specialization)
	// absent fields default: price to 0, rating to nil (never 0), geo to ""
	assert.Equal(t, 0, second.PriceRange)
	assert.Nil(t, second.Rating)
	assert.Equal(t, "", second.Address.Locality)
	assert.Equal(t, "", second.Location.Latitude)
}

func TestExtractDoctorsEmptyRating(t *testing.T) {
	s := newTestScraper()

	page := `<script type="application/ld+json">
	{"@type":"Physician","name":"Dr. X","medicalSpecialty":"Neurologist",
	 "description":"d","image":"i","url":"u",
	 "aggregateRating":{"ratingValue":""}}
	</script>`

	doctors, err := s.ExtractDoctors(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Nil(t, doctors[0].Rating)
}

func TestScrapePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, samplePage)
	}))
	defer srv.Close()

	s := newTestScraper()
	doctors, err := s.ScrapePage(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
}

func TestScrapePageBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := newTestScraper()
	_, err := s.ScrapePage(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestRunHaltsOnPageFailure(t *testing.T) {
	var pagesSeen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pagesSeen = append(pagesSeen, page)
		if page == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, samplePage)
	}))
	defer srv.Close()

	s := newTestScraper()
	_, err := s.Run(context.Background(), srv.URL+"/?page=%d", 3)
	require.Error(t, err)
	// page 3 is never fetched
	assert.Equal(t, []string{"1", "2"}, pagesSeen)
}

func TestRunConcatenatesInPageOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		fmt.Fprintf(w, `<script type="application/ld+json">
		{"@type":"Physician","name":"Dr. Page %s","medicalSpecialty":"General Physician",
		 "description":"d","image":"i","url":"u"}
		</script>`, page)
	}))
	defer srv.Close()

	s := newTestScraper()
	doctors, err := s.Run(context.Background(), srv.URL+"/?page=%d", 3)
	require.NoError(t, err)
	require.Len(t, doctors, 3)
	assert.Equal(t, "Dr. Page 1", doctors[0].Name)
	assert.Equal(t, "Dr. Page 3", doctors[2].Name)
}

func TestBatchRoundTrip(t *testing.T) {
	s := newTestScraper()
	doctors, err := s.ExtractDoctors(strings.NewReader(samplePage))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "doctors.json")
	require.NoError(t, WriteBatch(path, doctors))

	loaded, err := ReadBatch(path)
	require.NoError(t, err)
	require.Len(t, loaded, len(doctors))
	assert.Equal(t, doctors[0].Name, loaded[0].Name)
	require.NotNil(t, loaded[0].Rating)
	assert.Equal(t, 4.5, *loaded[0].Rating)
	assert.Nil(t, loaded[1].Rating)
}
