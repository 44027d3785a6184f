package converter

import (
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		Description:    doctor.Description,
		PriceRange:     doctor.PriceRange,
		Image:          doctor.Image,
		URL:            doctor.URL,
		Rating:         doctor.Rating,
		CreatedAt:      doctor.CreatedAt,
		UpdatedAt:      doctor.UpdatedAt,
		Address: dto.AddressResponse{
			Locality: doctor.Address.Locality,
			Region:   doctor.Address.Region,
		},
		Location: dto.LocationResponse{
			Latitude:  doctor.Location.Latitude,
			Longitude: doctor.Location.Longitude,
		},
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
