package model

type Patient struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Age            int    `db:"age" json:"age"`
	MedicalHistory string `db:"medical_history" json:"medical_history,omitempty"`
}

type CreatePatientRequest struct {
	Name           string `form:"name" binding:"required"`
	Age            *int   `form:"age" binding:"required"`
	MedicalHistory string `form:"medical_history"`
}

func (r *CreatePatientRequest) ToPatient() *Patient {
	return &Patient{
		Name:           r.Name,
		Age:            *r.Age,
		MedicalHistory: r.MedicalHistory,
	}
}
