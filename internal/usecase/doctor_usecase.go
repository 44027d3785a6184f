package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrInvalidPriceBucket = errors.New("invalid price range filter")
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

// ParsePriceBucket parses a price filter of the form "min-max" (half-open,
// max exclusive) or "min+" (no upper bound, max is nil).
func ParsePriceBucket(bucket string) (min int, max *int, err error) {
	if rest, ok := strings.CutSuffix(bucket, "+"); ok {
		min, err = strconv.Atoi(rest)
		if err != nil || min < 0 {
			return 0, nil, ErrInvalidPriceBucket
		}
		return min, nil, nil
	}

	parts := strings.SplitN(bucket, "-", 2)
	if len(parts) != 2 {
		return 0, nil, ErrInvalidPriceBucket
	}
	min, err = strconv.Atoi(parts[0])
	if err != nil || min < 0 {
		return 0, nil, ErrInvalidPriceBucket
	}
	upper, err := strconv.Atoi(parts[1])
	if err != nil || upper < min {
		return 0, nil, ErrInvalidPriceBucket
	}
	return min, &upper, nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	filtered := filterDoctors(doctors, filter)
	sortDoctors(filtered, filter.SortBy)

	total := len(filtered)

	return &dto.DoctorListResponse{
		Doctors:      converter.DoctorsToResponses(paginate(filtered, filter.Page, filter.Limit)),
		TotalPages:   totalPages(total, filter.Limit),
		CurrentPage:  filter.Page,
		TotalDoctors: total,
	}, nil
}

// filterDoctors applies search, specialization, price-bucket and region
// predicates conjunctively. Region is an in-memory case-insensitive equality
// check like the others, so it composes instead of overriding them.
func filterDoctors(doctors []entity.Doctor, filter *entity.DoctorFilter) []entity.Doctor {
	filtered := make([]entity.Doctor, 0, len(doctors))
	search := strings.ToLower(filter.Search)

	for _, doctor := range doctors {
		if search != "" && !matchesSearch(&doctor, search) {
			continue
		}
		if len(filter.Specializations) > 0 && !containsString(filter.Specializations, doctor.Specialization) {
			continue
		}
		if filter.HasPrice {
			if doctor.PriceRange < filter.PriceMin {
				continue
			}
			if filter.PriceMax != nil && doctor.PriceRange >= *filter.PriceMax {
				continue
			}
		}
		if filter.Region != "" && !strings.EqualFold(doctor.Address.Region, filter.Region) {
			continue
		}
		filtered = append(filtered, doctor)
	}

	return filtered
}

func matchesSearch(doctor *entity.Doctor, search string) bool {
	return strings.Contains(strings.ToLower(doctor.Name), search) ||
		strings.Contains(strings.ToLower(doctor.Specialization), search) ||
		strings.Contains(strings.ToLower(doctor.Description), search)
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// sortDoctors reorders in place. Relevance keeps storage-iteration order.
// A missing rating compares as 0 but is never mutated.
func sortDoctors(doctors []entity.Doctor, sortBy string) {
	switch sortBy {
	case entity.SortRating:
		sort.Slice(doctors, func(i, j int) bool {
			return ratingOrZero(&doctors[i]) > ratingOrZero(&doctors[j])
		})
	case entity.SortPriceLow:
		sort.Slice(doctors, func(i, j int) bool {
			return doctors[i].PriceRange < doctors[j].PriceRange
		})
	case entity.SortPriceHigh:
		sort.Slice(doctors, func(i, j int) bool {
			return doctors[i].PriceRange > doctors[j].PriceRange
		})
	}
}

func ratingOrZero(doctor *entity.Doctor) float64 {
	if doctor.Rating == nil {
		return 0
	}
	return *doctor.Rating
}

// totalPages is ceil(total/limit) over the filtered set, before pagination.
func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}

// paginate slices the half-open range [(page-1)*limit, page*limit).
func paginate(doctors []entity.Doctor, page, limit int) []entity.Doctor {
	start := (page - 1) * limit
	if start >= len(doctors) {
		return nil
	}
	end := start + limit
	if end > len(doctors) {
		end = len(doctors)
	}
	return doctors[start:end]
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Create doctor with address and location in a single insert using GORM
	// associations. Rating stays nil unless the caller supplied one.
	doctor := &entity.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Description:    req.Description,
		PriceRange:     req.PriceRange,
		Image:          req.Image,
		URL:            req.URL,
		Rating:         req.Rating,
		Address: entity.Address{
			Locality: req.Address.Locality,
			Region:   req.Address.Region,
		},
		Location: entity.Location{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		},
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}
