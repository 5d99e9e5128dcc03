// Package testutil provides domain-model fixtures shared by mapper,
// submitter, and client tests.
package testutil

import (
	"encoding/base64"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mspdirect/internal/msp/models"
)

// Logger returns a logger that drops everything, for wiring into code under
// test.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Date builds a time.Time pointer for fixture dates.
func Date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// JPEGImage returns a small attachment image with valid base64 content.
func JPEGImage(content string) models.Image {
	return models.Image{
		UUID:        uuid.New(),
		ContentType: "image/jpeg",
		Size:        int64(len(content)),
		FileContent: base64.StdEncoding.EncodeToString([]byte(content)),
	}
}

// PDFImage returns a PDF attachment image with valid base64 content.
func PDFImage(content string) models.Image {
	img := JPEGImage(content)
	img.ContentType = "application/pdf"
	return img
}

// Applicant returns a fully-populated adult citizen applicant.
func Applicant() models.Person {
	return models.Person{
		FirstName:             "Ada",
		MiddleName:            "Marie",
		LastName:              "Bowen",
		DateOfBirth:           Date(1985, time.March, 14),
		Gender:                models.GenderFemale,
		Relationship:          models.RelationshipApplicant,
		Status:                models.StatusCitizenAdult,
		LivedInBCSinceBirth:   true,
		MadePermanentMoveToBC: true,
	}
}

// Child returns a child person with the given relationship bucket.
func Child(rel models.Relationship, firstName string) models.Person {
	return models.Person{
		FirstName:             firstName,
		LastName:              "Bowen",
		DateOfBirth:           Date(2010, time.July, 2),
		Relationship:          rel,
		Status:                models.StatusCitizenAdult,
		LivedInBCSinceBirth:   true,
		MadePermanentMoveToBC: true,
	}
}

// EnrolmentApplication returns a minimal valid enrolment application:
// applicant only, one JPEG attachment, valid token.
func EnrolmentApplication() *models.EnrolmentApplication {
	applicant := Applicant()
	applicant.Documents = []models.Image{JPEGImage("id-card")}

	return &models.EnrolmentApplication{
		ApplicationBase: models.ApplicationBase{
			UUID:                      uuid.New(),
			AuthorizationToken:        "token-abc",
			PhoneNumber:               "(250) 555-0100",
			AuthorizedByApplicant:     true,
			AuthorizedByApplicantDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			ResidentialAddress: models.Address{
				AddressLine1: "712 Yates St",
				City:         "Victoria",
				Province:     "BC",
				Country:      "Canada",
				PostalCode:   "v8w 1l4",
			},
			MailingSameAsResidential: true,
		},
		Applicant: applicant,
	}
}

// AssistanceApplication returns a minimal valid assistance application with
// no attachments.
func AssistanceApplication() *models.AssistanceApplication {
	applicant := Applicant()
	applicant.SIN = "123-456-789"
	applicant.PreviousPHN = "9999 999 998"

	return &models.AssistanceApplication{
		ApplicationBase: models.ApplicationBase{
			UUID:                      uuid.New(),
			AuthorizationToken:        "token-abc",
			PhoneNumber:               "(250) 555-0100",
			AuthorizedByApplicant:     true,
			AuthorizedByApplicantDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			MailingAddress: models.Address{
				AddressLine1: "712 Yates St",
				City:         "Victoria",
				Province:     "BC",
				Country:      "Canada",
				PostalCode:   "V8W 1L4",
			},
		},
		Applicant:      applicant,
		AssistanceYear: models.AssistanceYearCurrent,
		TaxYear:        2023,
		NumberOfTaxYears: 1,
	}
}
