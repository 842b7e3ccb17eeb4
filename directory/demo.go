package directory

import "idcard/models"

// DemoEmployees returns the built-in sample records served whenever the
// sheet cannot be read. Each call returns a fresh copy.
func DemoEmployees() []models.Employee {
	return []models.Employee{
		{
			Profile: models.Profile{
				Username:            "john.doe",
				Office:              "Main Office",
				EmployeeNo:          "EMP001",
				LastName:            "Doe",
				FirstName:           "John",
				MiddleInitial:       "M",
				StatusOfEmployment:  "Regular",
				Position:            "Software Developer",
				NameOfContactPerson: "Jane Smith",
				ContactNo:           "+1-555-0123",
				HomeAddress:         "123 Main St, Anytown, USA 12345",
				Birthday:            "1990-05-15",
				TIN:                 "123-456-789",
				GSIS:                "GSIS123456",
				PagIbig:             "PAGIBIG789",
				PhilHealth:          "PH123456789",
				BloodType:           "A+",
				PhotoURL:            "https://storage.googleapis.com/workspace-0f70711f-8b4e-4d94-86f1-2a93ccde5887/image/3504af9e-1fd2-4a97-ab3d-466cd2cffe51.png",
			},
			Password: "demo123",
		},
		{
			Profile: models.Profile{
				Username:            "jane.smith",
				Office:              "Branch Office",
				EmployeeNo:          "EMP002",
				LastName:            "Smith",
				FirstName:           "Jane",
				MiddleInitial:       "A",
				StatusOfEmployment:  "Regular",
				Position:            "Project Manager",
				NameOfContactPerson: "Bob Johnson",
				ContactNo:           "+1-555-0456",
				HomeAddress:         "456 Oak Ave, Somewhere, USA 67890",
				Birthday:            "1988-08-22",
				TIN:                 "987-654-321",
				GSIS:                "GSIS654321",
				PagIbig:             "PAGIBIG456",
				PhilHealth:          "PH987654321",
				BloodType:           "B+",
				PhotoURL:            "https://storage.googleapis.com/workspace-0f70711f-8b4e-4d94-86f1-2a93ccde5887/image/e70e705f-f0e1-4eaa-8064-e13d5feccba9.png",
			},
			Password: "demo456",
		},
	}
}

// DemoCredentials lists the usernames and passwords of DemoEmployees.
func DemoCredentials() []models.LoginInput {
	demo := DemoEmployees()
	creds := make([]models.LoginInput, 0, len(demo))
	for _, emp := range demo {
		creds = append(creds, models.LoginInput{Username: emp.Username, Password: emp.Password})
	}
	return creds
}
