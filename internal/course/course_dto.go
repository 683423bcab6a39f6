package course

type CourseRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Title      string `json:"title" binding:"required,max=200"`
	Provider   string `json:"provider" binding:"max=200"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

type CourseResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Title        string `json:"title"`
	Provider     string `json:"provider"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}
