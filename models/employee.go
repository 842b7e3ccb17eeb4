package models

// Profile is everything about an employee that may leave the server.
type Profile struct {
	Username            string `json:"username"`
	Office              string `json:"office"`
	EmployeeNo          string `json:"employeeNo"`
	LastName            string `json:"lastName"`
	FirstName           string `json:"firstName"`
	MiddleInitial       string `json:"middleInitial"`
	Suffix              string `json:"suffix"`
	StatusOfEmployment  string `json:"statusOfEmployment"`
	Position            string `json:"position"`
	NameOfContactPerson string `json:"nameOfContactPerson"`
	ContactNo           string `json:"contactNo"`
	HomeAddress         string `json:"homeAddress"`
	Birthday            string `json:"birthday"`
	TIN                 string `json:"tin"`
	GSIS                string `json:"gsis"`
	PagIbig             string `json:"pagIbig"`
	PhilHealth          string `json:"philhealth"`
	BloodType           string `json:"bloodType"`
	PhotoURL            string `json:"photoUrl"`
}

// Employee is one row of the employee sheet, password included.
type Employee struct {
	Profile
	Password string `json:"password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
