package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name" binding:"required"`
	NationalID     string `json:"national_id"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	JobTitle       string `json:"job_title"`
	SalaryCategory string `json:"salary_category"`
	HireDate       string `json:"hire_date" binding:"required"`
	Status         string `json:"status"`
}

type UpdateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	FullName       string `json:"full_name" binding:"required"`
	NationalID     string `json:"national_id"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	JobTitle       string `json:"job_title"`
	SalaryCategory string `json:"salary_category"`
	HireDate       string `json:"hire_date" binding:"required"`
	Status         string `json:"status" binding:"required"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	NationalID     string `json:"national_id,omitempty"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Department     string `json:"department,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
	SalaryCategory string `json:"salary_category,omitempty"`
	HireDate       string `json:"hire_date"`
	Status         string `json:"status"`
}

type EmployeeOptionResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
}
