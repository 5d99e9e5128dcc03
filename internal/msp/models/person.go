package models

import "time"

// Relationship classifies a person within an application.
type Relationship string

const (
	RelationshipApplicant    Relationship = "applicant"
	RelationshipSpouse       Relationship = "spouse"
	RelationshipChildUnder19 Relationship = "child_under_19"
	RelationshipChild19To24  Relationship = "child_19_to_24"
)

// StatusInCanada is the person's immigration status.
type StatusInCanada string

const (
	StatusCitizenAdult      StatusInCanada = "citizen_adult"
	StatusPermanentResident StatusInCanada = "permanent_resident"
	StatusTemporaryResident StatusInCanada = "temporary_resident"
)

// Activity is what a temporary resident is currently doing in BC. It refines
// the citizenship classification on the wire document.
type Activity string

const (
	ActivityWorkingInBC  Activity = "working_in_bc"
	ActivityStudyingInBC Activity = "studying_in_bc"
	ActivityVisiting     Activity = "visiting"
	ActivityDiplomat     Activity = "diplomat"
)

// Gender matches the wire document's single-letter encoding.
type Gender string

const (
	GenderFemale Gender = "F"
	GenderMale   Gender = "M"
)

// OutOfBCRecord describes a past absence from BC longer than the allowed
// window. Departure and return dates are optional; the form can capture the
// absence before the traveller knows either date.
type OutOfBCRecord struct {
	DepartureDate *time.Time `json:"departure_date,omitempty"`
	ReturnDate    *time.Time `json:"return_date,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	Location      string     `json:"location,omitempty"`
}

// Person is one member of an application: the applicant, a spouse, or a
// child/dependent. It is built and validated by the upstream form wizard;
// this core only reads it.
//
// Optional facts are pointers (nil means the form never captured them).
// Boolean residency facts default to false, which the mapper encodes as "N".
type Person struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`

	DateOfBirth  *time.Time     `json:"date_of_birth,omitempty"`
	Gender       Gender         `json:"gender,omitempty"`
	Relationship Relationship   `json:"relationship"`
	Status       StatusInCanada `json:"status"`
	Activity     Activity       `json:"activity,omitempty"`

	// Residency facts.
	LivedInBCSinceBirth         bool           `json:"lived_in_bc_since_birth"`
	MadePermanentMoveToBC       bool           `json:"made_permanent_move_to_bc"`
	HealthNumberFromOtherProvince string       `json:"health_number_from_other_province,omitempty"`
	MovedFromProvinceOrCountry  string         `json:"moved_from_province_or_country,omitempty"`
	ArrivalToBC                 *time.Time     `json:"arrival_to_bc,omitempty"`
	ArrivalToCanada             *time.Time     `json:"arrival_to_canada,omitempty"`
	OutOfBCRecord               *OutOfBCRecord `json:"out_of_bc_record,omitempty"`
	FullTimeStudent             bool           `json:"full_time_student"`
	InBCAfterStudies            bool           `json:"in_bc_after_studies"`
	DischargeDate               *time.Time     `json:"discharge_date,omitempty"`
	HasPreviousBCPhn            bool           `json:"has_previous_bc_phn"`
	PreviousPHN                 string         `json:"previous_phn,omitempty"`
	SIN                         string         `json:"sin,omitempty"`

	// Dependent (child 19-24) schooling facts.
	SchoolName           string     `json:"school_name,omitempty"`
	SchoolAddress        Address    `json:"school_address,omitempty"`
	StudiesDepartureDate *time.Time `json:"studies_departure_date,omitempty"`
	StudiesFinishedDate  *time.Time `json:"studies_finished_date,omitempty"`

	// Supporting document images attached to this person.
	Documents []Image `json:"documents,omitempty"`
}
