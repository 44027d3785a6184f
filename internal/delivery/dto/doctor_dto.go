package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AddressPayload struct {
	Locality string `json:"locality" validate:"required"`
	Region   string `json:"region" validate:"required"`
}

type LocationPayload struct {
	Latitude  string `json:"latitude" validate:"required"`
	Longitude string `json:"longitude" validate:"required"`
}

// CreateDoctorRequest is the create payload. It is also the record shape of
// the scraper's batch artifact, so scraped records import through the same
// composite create as the API.
type CreateDoctorRequest struct {
	Name           string          `json:"name" validate:"required"`
	Specialization string          `json:"specialization" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	PriceRange     int             `json:"priceRange" validate:"required,gte=0"`
	Image          string          `json:"image" validate:"required"`
	URL            string          `json:"url" validate:"required"`
	Rating         *float64        `json:"rating,omitempty" validate:"omitempty,gte=0"`
	Address        AddressPayload  `json:"address" validate:"required"`
	Location       LocationPayload `json:"location" validate:"required"`
}

// Response DTOs

type AddressResponse struct {
	Locality string `json:"locality"`
	Region   string `json:"region"`
}

type LocationResponse struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type DoctorResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Specialization string           `json:"specialization"`
	Description    string           `json:"description"`
	PriceRange     int              `json:"priceRange"`
	Image          string           `json:"image"`
	URL            string           `json:"url"`
	Rating         *float64         `json:"rating"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	Address        AddressResponse  `json:"address"`
	Location       LocationResponse `json:"location"`
}

// DoctorListResponse is the listing contract: one page of doctors plus
// pagination metadata over the filtered set.
type DoctorListResponse struct {
	Doctors      []DoctorResponse `json:"doctors"`
	TotalPages   int              `json:"totalPages"`
	CurrentPage  int              `json:"currentPage"`
	TotalDoctors int              `json:"totalDoctors"`
}

type CreateDoctorResponse struct {
	Message string          `json:"message"`
	Doctor  *DoctorResponse `json:"doctor"`
}
