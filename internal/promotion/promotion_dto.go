package promotion

type PromotionRequest struct {
	EmployeeID    string `json:"employee_id" binding:"required,uuid"`
	FromCategory  string `json:"from_category" binding:"required"`
	ToCategory    string `json:"to_category" binding:"required"`
	PromotionDate string `json:"promotion_date" binding:"required"`
	Reason        string `json:"reason"`
}

type PromotionResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	FromCategory  string  `json:"from_category"`
	ToCategory    string  `json:"to_category"`
	PromotionDate string  `json:"promotion_date"`
	Status        string  `json:"status"`
	Reason        string  `json:"reason"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
}
