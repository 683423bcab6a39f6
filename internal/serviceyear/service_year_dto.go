package serviceyear

type ServiceYearRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    *string `json:"end_date"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
}

type ServiceYearResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	Years        int     `json:"years"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`
}
