package constvars

const (
	MongoCollectionConsultations = "consultations"
	MongoCollectionPrescriptions = "prescriptions"
	MongoCollectionDoctorShifts  = "doctor_shifts"
)

const (
	MongoIndexOneActiveConsultationPerPatient = "uniq_patient_active_consultation"
)
