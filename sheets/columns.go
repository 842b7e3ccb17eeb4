package sheets

// ColumnCount is the number of columns an employee row spans (A to T).
const ColumnCount = 20

// CellRange is the A1 column range read from the employee tab.
const CellRange = "A:T"

const (
	ColUsername            = "USERNAME"
	ColPassword            = "PASSWORD"
	ColOffice              = "OFFICE"
	ColEmployeeNo          = "EMPLOYEE_NO"
	ColLastName            = "LAST_NAME"
	ColFirstName           = "FIRST_NAME"
	ColMiddleInitial       = "MIDDLE_INITIAL"
	ColSuffix              = "SUFFIX"
	ColStatusOfEmployment  = "STATUS_OF_EMPLOYMENT"
	ColPosition            = "POSITION"
	ColNameOfContactPerson = "NAME_OF_CONTACT_PERSON"
	ColContactNo           = "CONTACT_NO"
	ColHomeAddress         = "HOME_ADDRESS"
	ColBirthday            = "BIRTHDAY"
	ColTIN                 = "TIN"
	ColGSIS                = "GSIS"
	ColPagIbig             = "PAG_IBIG"
	ColPhilHealth          = "PHILHEALTH"
	ColBloodType           = "BLOODTYPE"
	ColPhotoURL            = "PHOTOURL"
)

// Columns maps each employee field to its zero-based position in a sheet row.
var Columns = map[string]int{
	ColUsername:            0,
	ColPassword:            1,
	ColOffice:              2,
	ColEmployeeNo:          3,
	ColLastName:            4,
	ColFirstName:           5,
	ColMiddleInitial:       6,
	ColSuffix:              7,
	ColStatusOfEmployment:  8,
	ColPosition:            9,
	ColNameOfContactPerson: 10,
	ColContactNo:           11,
	ColHomeAddress:         12,
	ColBirthday:            13,
	ColTIN:                 14,
	ColGSIS:                15,
	ColPagIbig:             16,
	ColPhilHealth:          17,
	ColBloodType:           18,
	ColPhotoURL:            19,
}
