package responses

type DoctorShift struct {
	ShiftID   string `json:"shiftId"`
	ShiftType string `json:"shiftType"`
	DoctorID  string `json:"doctorId"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Status    string `json:"status"`
}

type CurrentDoctor struct {
	DoctorID  string `json:"doctorId"`
	ShiftID   string `json:"shiftId"`
	ShiftType string `json:"shiftType"`
	FromCache bool   `json:"fromCache"`
}
