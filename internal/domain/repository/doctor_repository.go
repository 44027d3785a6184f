package repository

import (
	"go-doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
}
