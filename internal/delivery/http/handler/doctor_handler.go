package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseListFilter(w, r)
	if !ok {
		return
	}

	result, err := h.doctorUsecase.ListDoctors(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// parseListFilter builds the domain filter from query parameters. Absent
// page/limit default to 1/10; non-numeric or non-positive values are
// rejected instead of degrading silently.
func (h *DoctorHandler) parseListFilter(w http.ResponseWriter, r *http.Request) (*entity.DoctorFilter, bool) {
	query := r.URL.Query()

	page, ok := parsePositiveInt(w, query.Get("page"), "page", 1)
	if !ok {
		return nil, false
	}
	limit, ok := parsePositiveInt(w, query.Get("limit"), "limit", 10)
	if !ok {
		return nil, false
	}

	sortBy := query.Get("sortBy")
	if sortBy == "" {
		sortBy = entity.SortRelevance
	}

	filter := &entity.DoctorFilter{
		Search:          query.Get("search"),
		Specializations: query["specialization"],
		Region:          query.Get("region"),
		SortBy:          sortBy,
		Page:            page,
		Limit:           limit,
	}

	if bucket := query.Get("priceRange"); bucket != "" {
		min, max, err := usecase.ParsePriceBucket(bucket)
		if err != nil {
			response.BadRequest(w, "Invalid priceRange parameter")
			return nil, false
		}
		filter.HasPrice = true
		filter.PriceMin = min
		filter.PriceMax = max
	}

	return filter, true
}

func parsePositiveInt(w http.ResponseWriter, raw, name string, defaultValue int) (int, bool) {
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		response.BadRequest(w, "Invalid "+name+" parameter")
		return 0, false
	}
	return value, true
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationError(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to add doctor")
		return
	}

	response.JSON(w, http.StatusCreated, dto.CreateDoctorResponse{
		Message: "Doctor added successfully",
		Doctor:  doctor,
	})
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}
