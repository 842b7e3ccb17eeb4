package sheets

import (
	"strings"

	"idcard/models"
)

// ParseRows turns a sheet value matrix into employees. Row 0 is the header
// and is always skipped. Short rows are padded with empty cells, every cell
// is trimmed, and rows without a username or password are dropped.
func ParseRows(rows [][]string) []models.Employee {
	if len(rows) < 2 {
		return []models.Employee{}
	}

	employees := make([]models.Employee, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		emp := parseRow(padRow(raw))
		if emp.Username == "" || emp.Password == "" {
			continue
		}
		employees = append(employees, emp)
	}
	return employees
}

func padRow(raw []string) []string {
	row := make([]string, ColumnCount)
	copy(row, raw)
	return row
}

func parseRow(row []string) models.Employee {
	cell := func(name string) string {
		return strings.TrimSpace(row[Columns[name]])
	}

	return models.Employee{
		Profile: models.Profile{
			Username:            cell(ColUsername),
			Office:              cell(ColOffice),
			EmployeeNo:          cell(ColEmployeeNo),
			LastName:            cell(ColLastName),
			FirstName:           cell(ColFirstName),
			MiddleInitial:       cell(ColMiddleInitial),
			Suffix:              cell(ColSuffix),
			StatusOfEmployment:  cell(ColStatusOfEmployment),
			Position:            cell(ColPosition),
			NameOfContactPerson: cell(ColNameOfContactPerson),
			ContactNo:           cell(ColContactNo),
			HomeAddress:         cell(ColHomeAddress),
			Birthday:            cell(ColBirthday),
			TIN:                 cell(ColTIN),
			GSIS:                cell(ColGSIS),
			PagIbig:             cell(ColPagIbig),
			PhilHealth:          cell(ColPhilHealth),
			BloodType:           cell(ColBloodType),
			PhotoURL:            NormalizePhotoURL(cell(ColPhotoURL)),
		},
		Password: cell(ColPassword),
	}
}
