package card

import (
	"errors"
	"strings"

	"idcard/models"
)

// ErrPrintUnsupported is returned by Print; printed cards are not available yet.
var ErrPrintUnsupported = errors.New("card: printing ID cards is not supported yet")

// Data is the subset of a profile shown on the ID card.
type Data struct {
	FullName           string `json:"fullName"`
	EmployeeNo         string `json:"employeeNo"`
	Position           string `json:"position"`
	Office             string `json:"office"`
	PhotoURL           string `json:"photoUrl"`
	ContactNo          string `json:"contactNo"`
	BloodType          string `json:"bloodType"`
	StatusOfEmployment string `json:"statusOfEmployment"`
	Birthday           string `json:"birthday"`
	HomeAddress        string `json:"homeAddress"`
	TIN                string `json:"tin"`
	GSIS               string `json:"gsis"`
	PagIbig            string `json:"pagIbig"`
	PhilHealth         string `json:"philhealth"`
}

// FullName joins first name, middle initial (with a period), last name and
// suffix, skipping blank parts.
func FullName(p models.Profile) string {
	middle := ""
	if p.MiddleInitial != "" {
		middle = p.MiddleInitial + "."
	}

	parts := make([]string, 0, 4)
	for _, part := range []string{p.FirstName, middle, p.LastName, p.Suffix} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return strings.Join(parts, " ")
}

func NewData(p models.Profile) Data {
	return Data{
		FullName:           FullName(p),
		EmployeeNo:         p.EmployeeNo,
		Position:           p.Position,
		Office:             p.Office,
		PhotoURL:           p.PhotoURL,
		ContactNo:          p.ContactNo,
		BloodType:          p.BloodType,
		StatusOfEmployment: p.StatusOfEmployment,
		Birthday:           p.Birthday,
		HomeAddress:        p.HomeAddress,
		TIN:                p.TIN,
		GSIS:               p.GSIS,
		PagIbig:            p.PagIbig,
		PhilHealth:         p.PhilHealth,
	}
}

func Print(p models.Profile) error {
	return ErrPrintUnsupported
}
