package employee

type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	IDNumber    string `json:"id_number" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Position    string `json:"position"`
	BasicSalary string `json:"basic_salary" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Name        *string `json:"name"`
	IDNumber    *string `json:"id_number"`
	PhoneNumber *string `json:"phone_number"`
	Position    *string `json:"position"`
	BasicSalary *string `json:"basic_salary"`
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	IDNumber    string  `json:"id_number"`
	PhoneNumber string  `json:"phone_number,omitempty"`
	Position    string  `json:"position,omitempty"`
	BasicSalary float64 `json:"basic_salary"`
	CreatedAt   string  `json:"created_at"`
}
