package usecase

import (
	"testing"

	"go-doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingPtr(v float64) *float64 { return &v }

func sampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			Name:           "Dr. Cardio Patel",
			Specialization: entity.SpecializationCardiologist,
			Description:    "Heart specialist with 12 years of experience",
			PriceRange:     1500,
			Rating:         ratingPtr(4.5),
			Address:        entity.Address{Locality: "Mumbai", Region: "West"},
		},
		{
			Name:           "Dr. Anita Rao",
			Specialization: entity.SpecializationDermatologist,
			Description:    "Skin and hair care",
			PriceRange:     1000,
			Rating:         ratingPtr(4.8),
			Address:        entity.Address{Locality: "Delhi", Region: "North"},
		},
		{
			Name:           "Dr. Vikram Shah",
			Specialization: entity.SpecializationGeneralPhysician,
			Description:    "Family medicine",
			PriceRange:     2000,
			Rating:         nil,
			Address:        entity.Address{Locality: "Chennai", Region: "South"},
		},
		{
			Name:           "Dr. Meera Nair",
			Specialization: entity.SpecializationGeneralPhysician,
			Description:    "Internal medicine and cardiology referrals",
			PriceRange:     3000,
			Rating:         ratingPtr(3.9),
			Address:        entity.Address{Locality: "Kochi", Region: "north"},
		},
	}
}

func TestParsePriceBucket(t *testing.T) {
	tests := []struct {
		bucket  string
		min     int
		max     int // -1 means open-ended
		wantErr bool
	}{
		{"1000-2000", 1000, 2000, false},
		{"0-500", 0, 500, false},
		{"3000+", 3000, -1, false},
		{"0+", 0, -1, false},
		{"abc", 0, 0, true},
		{"1000", 0, 0, true},
		{"1000-", 0, 0, true},
		{"-500+", 0, 0, true},
		{"2000-1000", 0, 0, true},
	}

	for _, tt := range tests {
		min, max, err := ParsePriceBucket(tt.bucket)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPriceBucket, "bucket %q", tt.bucket)
			continue
		}
		require.NoError(t, err, "bucket %q", tt.bucket)
		assert.Equal(t, tt.min, min, "bucket %q min", tt.bucket)
		if tt.max == -1 {
			assert.Nil(t, max, "bucket %q max", tt.bucket)
		} else {
			require.NotNil(t, max, "bucket %q max", tt.bucket)
			assert.Equal(t, tt.max, *max, "bucket %q max", tt.bucket)
		}
	}
}

func TestFilterDoctorsSearch(t *testing.T) {
	doctors := sampleDoctors()

	// matches name, specialization and description case-insensitively
	filtered := filterDoctors(doctors, &entity.DoctorFilter{Search: "cardio"})
	require.Len(t, filtered, 2)
	assert.Equal(t, "Dr. Cardio Patel", filtered[0].Name)
	assert.Equal(t, "Dr. Meera Nair", filtered[1].Name)

	filtered = filterDoctors(doctors, &entity.DoctorFilter{Search: "SKIN"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Dr. Anita Rao", filtered[0].Name)

	filtered = filterDoctors(doctors, &entity.DoctorFilter{Search: "nope"})
	assert.Empty(t, filtered)
}

func TestFilterDoctorsSpecialization(t *testing.T) {
	doctors := sampleDoctors()

	filtered := filterDoctors(doctors, &entity.DoctorFilter{
		Specializations: []string{entity.SpecializationGeneralPhysician},
	})
	require.Len(t, filtered, 2)

	// exact match, not case-folded
	filtered = filterDoctors(doctors, &entity.DoctorFilter{
		Specializations: []string{"general physician"},
	})
	assert.Empty(t, filtered)

	filtered = filterDoctors(doctors, &entity.DoctorFilter{
		Specializations: []string{entity.SpecializationCardiologist, entity.SpecializationDermatologist},
	})
	assert.Len(t, filtered, 2)
}

func TestFilterDoctorsPriceBucket(t *testing.T) {
	doctors := sampleDoctors()

	// half-open: lower bound inclusive, upper bound exclusive
	upper := 2000
	filtered := filterDoctors(doctors, &entity.DoctorFilter{HasPrice: true, PriceMin: 1000, PriceMax: &upper})
	require.Len(t, filtered, 2)
	for _, d := range filtered {
		assert.GreaterOrEqual(t, d.PriceRange, 1000)
		assert.Less(t, d.PriceRange, 2000)
	}

	// "3000+" includes a doctor priced at exactly 3000
	filtered = filterDoctors(doctors, &entity.DoctorFilter{HasPrice: true, PriceMin: 3000})
	require.Len(t, filtered, 1)
	assert.Equal(t, 3000, filtered[0].PriceRange)
}

func TestFilterDoctorsRegionCaseInsensitive(t *testing.T) {
	doctors := sampleDoctors()

	filtered := filterDoctors(doctors, &entity.DoctorFilter{Region: "north"})
	assert.Len(t, filtered, 2)

	filtered = filterDoctors(doctors, &entity.DoctorFilter{Region: "NORTH"})
	assert.Len(t, filtered, 2)
}

func TestFilterDoctorsComposesConjunctively(t *testing.T) {
	doctors := sampleDoctors()

	// region must narrow the search result, not replace it
	filtered := filterDoctors(doctors, &entity.DoctorFilter{
		Search: "medicine",
		Region: "north",
	})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Dr. Meera Nair", filtered[0].Name)
}

func TestSortDoctorsPrice(t *testing.T) {
	doctors := sampleDoctors()

	sortDoctors(doctors, entity.SortPriceLow)
	for i := 1; i < len(doctors); i++ {
		assert.LessOrEqual(t, doctors[i-1].PriceRange, doctors[i].PriceRange)
	}

	sortDoctors(doctors, entity.SortPriceHigh)
	for i := 1; i < len(doctors); i++ {
		assert.GreaterOrEqual(t, doctors[i-1].PriceRange, doctors[i].PriceRange)
	}
}

func TestSortDoctorsRating(t *testing.T) {
	doctors := sampleDoctors()

	sortDoctors(doctors, entity.SortRating)
	for i := 1; i < len(doctors); i++ {
		assert.GreaterOrEqual(t, ratingOrZero(&doctors[i-1]), ratingOrZero(&doctors[i]))
	}

	// missing rating sorts last but stays nil
	last := doctors[len(doctors)-1]
	assert.Equal(t, "Dr. Vikram Shah", last.Name)
	assert.Nil(t, last.Rating)
}

func TestSortDoctorsRelevanceKeepsOrder(t *testing.T) {
	doctors := sampleDoctors()
	sortDoctors(doctors, entity.SortRelevance)

	assert.Equal(t, "Dr. Cardio Patel", doctors[0].Name)
	assert.Equal(t, "Dr. Meera Nair", doctors[3].Name)
}

func TestPaginate(t *testing.T) {
	doctors := sampleDoctors()

	page := paginate(doctors, 1, 3)
	require.Len(t, page, 3)
	assert.Equal(t, doctors[0].Name, page[0].Name)

	page = paginate(doctors, 2, 3)
	require.Len(t, page, 1)
	assert.Equal(t, doctors[3].Name, page[0].Name)

	assert.Empty(t, paginate(doctors, 3, 3))
	assert.Empty(t, paginate(nil, 1, 10))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{4, 3, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, totalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}
