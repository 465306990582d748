package attendance

type AttendanceResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	TimeIn      *string `json:"time_in,omitempty"`
	TimeOut     *string `json:"time_out,omitempty"`
	Status      string  `json:"status"`
	HoursWorked *string `json:"hours_worked,omitempty"`
}
