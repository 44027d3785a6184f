package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is the core listing entity. Address and Location are one-to-one
// children created together with the doctor and never shared.
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	PriceRange     int       `gorm:"not null;default:0" json:"priceRange"`
	Image          string    `gorm:"type:text;not null" json:"image"`
	URL            string    `gorm:"type:text;not null" json:"url"`
	Rating         *float64  `gorm:"type:numeric(3,1)" json:"rating"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Address  Address  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"address"`
	Location Location `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"location"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Address holds the coarse geography of a doctor. Region is matched
// case-insensitively when filtering.
type Address struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Locality string    `gorm:"type:varchar(255)" json:"locality"`
	Region   string    `gorm:"type:varchar(100);index" json:"region"`
}

func (Address) TableName() string {
	return "addresses"
}

// Location holds geographic coordinates. They are stored as text because the
// scrape source does not guarantee numeric values.
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Latitude  string    `gorm:"type:varchar(50)" json:"latitude"`
	Longitude string    `gorm:"type:varchar(50)" json:"longitude"`
}

func (Location) TableName() string {
	return "locations"
}
