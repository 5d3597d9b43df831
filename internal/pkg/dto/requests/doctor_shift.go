package requests

type CreateDoctorShift struct {
	ShiftType string `json:"shiftType" validate:"required,shift_type"`
	DoctorID  string `json:"doctorId" validate:"required"`
	StartHour int    `json:"startHour" validate:"gte=0,lte=23"`
	EndHour   int    `json:"endHour" validate:"gte=1,lte=23"`
}

type UpdateDoctorShift struct {
	ShiftID   string `json:"-" validate:"required"`
	DoctorID  string `json:"doctorId,omitempty"`
	StartHour *int   `json:"startHour,omitempty" validate:"omitempty,gte=0,lte=23"`
	EndHour   *int   `json:"endHour,omitempty" validate:"omitempty,gte=1,lte=23"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
