package models

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer-not-to-say"
)

type Patient struct {
	BaseUUIDModel
	FirstName   string `gorm:"type:varchar(255);not null;index" json:"firstName"`
	LastName    string `gorm:"type:varchar(255);not null;index" json:"lastName"`
	DateOfBirth string `gorm:"type:varchar(10);not null"        json:"dateOfBirth"` // YYYY-MM-DD
	Gender      Gender `gorm:"type:varchar(20);not null"        json:"gender"`
	Email       string `gorm:"type:varchar(255);index"          json:"email"`
	Phone       string `gorm:"type:varchar(50);index"           json:"phone"`
	Address     string `gorm:"type:varchar(255)"                json:"address"`
	City        string `gorm:"type:varchar(100)"                json:"city"`
	State       string `gorm:"type:varchar(50)"                 json:"state"`
	ZipCode     string `gorm:"type:varchar(20)"                 json:"zipCode"`

	BloodType        *string `gorm:"type:varchar(10)"  json:"bloodType,omitempty"`
	Allergies        *string `gorm:"type:text"         json:"allergies,omitempty"`
	EmergencyContact *string `gorm:"type:varchar(255)" json:"emergencyContact,omitempty"`
	EmergencyPhone   *string `gorm:"type:varchar(50)"  json:"emergencyPhone,omitempty"`
	Insurance        *string `gorm:"type:varchar(255)" json:"insurance,omitempty"`
	InsuranceID      *string `gorm:"type:varchar(100)" json:"insuranceId,omitempty"`
}

// PatientUpdate is a partial patient: only non-nil fields are applied.
// Identifier and creation timestamp are never part of an update.
type PatientUpdate struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Gender      *Gender `json:"gender,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	ZipCode     *string `json:"zipCode,omitempty"`

	BloodType        *string `json:"bloodType,omitempty"`
	Allergies        *string `json:"allergies,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	EmergencyPhone   *string `json:"emergencyPhone,omitempty"`
	Insurance        *string `json:"insurance,omitempty"`
	InsuranceID      *string `json:"insuranceId,omitempty"`
}

// Apply merges the partial update into patient, field present wins.
func (u PatientUpdate) Apply(patient *Patient) {
	if u.FirstName != nil {
		patient.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		patient.LastName = *u.LastName
	}
	if u.DateOfBirth != nil {
		patient.DateOfBirth = *u.DateOfBirth
	}
	if u.Gender != nil {
		patient.Gender = *u.Gender
	}
	if u.Email != nil {
		patient.Email = *u.Email
	}
	if u.Phone != nil {
		patient.Phone = *u.Phone
	}
	if u.Address != nil {
		patient.Address = *u.Address
	}
	if u.City != nil {
		patient.City = *u.City
	}
	if u.State != nil {
		patient.State = *u.State
	}
	if u.ZipCode != nil {
		patient.ZipCode = *u.ZipCode
	}
	if u.BloodType != nil {
		patient.BloodType = u.BloodType
	}
	if u.Allergies != nil {
		patient.Allergies = u.Allergies
	}
	if u.EmergencyContact != nil {
		patient.EmergencyContact = u.EmergencyContact
	}
	if u.EmergencyPhone != nil {
		patient.EmergencyPhone = u.EmergencyPhone
	}
	if u.Insurance != nil {
		patient.Insurance = u.Insurance
	}
	if u.InsuranceID != nil {
		patient.InsuranceID = u.InsuranceID
	}
}
