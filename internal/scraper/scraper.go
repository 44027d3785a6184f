package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go-doctor-directory/internal/delivery/dto"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// physicianType is the JSON-LD @type value that marks a practitioner block.
const physicianType = "Physician"

// Scraper extracts doctor records from the JSON-LD blocks embedded in the
// directory's listing pages.
type Scraper struct {
	client *http.Client
	log    *logrus.Logger
}

func New(client *http.Client, log *logrus.Logger) *Scraper {
	return &Scraper{
		client: client,
		log:    log,
	}
}

// Run fetches pages 1..pages of the base URL template sequentially and
// concatenates the extracted records in page order. A fetch failure halts
// the remaining pages.
func (s *Scraper) Run(ctx context.Context, baseURL string, pages int) ([]dto.CreateDoctorRequest, error) {
	var doctors []dto.CreateDoctorRequest

	for page := 1; page <= pages; page++ {
		pageDoctors, err := s.ScrapePage(ctx, fmt.Sprintf(baseURL, page))
		if err != nil {
			return nil, fmt.Errorf("scrape page %d: %w", page, err)
		}
		doctors = append(doctors, pageDoctors...)
		s.log.Infof("Scraping done for page %d, total doctors collected: %d", page, len(doctors))
	}

	return doctors, nil
}

// ScrapePage fetches a single listing page and extracts its doctor records.
func (s *Scraper) ScrapePage(ctx context.Context, url string) ([]dto.CreateDoctorRequest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status code %d", url, res.StatusCode)
	}

	return s.ExtractDoctors(res.Body)
}

// ExtractDoctors parses every ld+json block in the document and projects
// the Physician ones into the doctor record shape. Blocks that fail to
// parse are logged and skipped; they never abort the extraction.
func (s *Scraper) ExtractDoctors(r io.Reader) ([]dto.CreateDoctorRequest, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	doctors := []dto.CreateDoctorRequest{}
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var block physicianBlock
		if err := json.Unmarshal([]byte(sel.Text()), &block); err != nil {
			s.log.Warnf("Failed parsing structured data block: %v", err)
			return
		}
		if block.Type != physicianType {
			return
		}
		doctors = append(doctors, projectDoctor(&block))
	})

	return doctors, nil
}

// physicianBlock mirrors the schema.org Physician JSON-LD emitted by the
// directory. Numeric-or-string fields use lenient decoders because the
// source is not consistent about types.
type physicianBlock struct {
	Type             string     `json:"@type"`
	Name             string     `json:"name"`
	MedicalSpecialty string     `json:"medicalSpecialty"`
	Description      string     `json:"description"`
	PriceRange       lenientInt `json:"priceRange"`
	Image            string     `json:"image"`
	URL              string     `json:"url"`
	Address          struct {
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
	} `json:"address"`
	Geo struct {
		Latitude  lenientText `json:"latitude"`
		Longitude lenientText `json:"longitude"`
	} `json:"geo"`
	AggregateRating struct {
		RatingValue lenientFloat `json:"ratingValue"`
	} `json:"aggregateRating"`
}

func projectDoctor(block *physicianBlock) dto.CreateDoctorRequest {
	return dto.CreateDoctorRequest{
		Name:           block.Name,
		Specialization: block.MedicalSpecialty,
		Description:    block.Description,
		PriceRange:     int(block.PriceRange),
		Image:          block.Image,
		URL:            block.URL,
		Rating:         block.AggregateRating.RatingValue.value,
		Address: dto.AddressPayload{
			Locality: block.Address.AddressLocality,
			Region:   block.Address.AddressRegion,
		},
		Location: dto.LocationPayload{
			Latitude:  string(block.Geo.Latitude),
			Longitude: string(block.Geo.Longitude),
		},
	}
}
