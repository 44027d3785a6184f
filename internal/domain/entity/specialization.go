package entity

// Fixed specialization set. Filter callers must supply these values exactly;
// specialization matching is not case-folded.
const (
	SpecializationGeneralPhysician = "General Physician"
	SpecializationCardiologist     = "Cardiologist"
	SpecializationDermatologist    = "Dermatologist"
	SpecializationNeurologist      = "Neurologist"
	SpecializationOrthopedist      = "Orthopedist"
	SpecializationPediatrician     = "Pediatrician"
	SpecializationPsychiatrist     = "Psychiatrist"
	SpecializationGynecologist     = "Gynecologist"
)

// Specializations lists every known specialization value.
var Specializations = []string{
	SpecializationGeneralPhysician,
	SpecializationCardiologist,
	SpecializationDermatologist,
	SpecializationNeurologist,
	SpecializationOrthopedist,
	SpecializationPediatrician,
	SpecializationPsychiatrist,
	SpecializationGynecologist,
}
