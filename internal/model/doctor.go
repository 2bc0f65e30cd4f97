package model

type Doctor struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Specialization string `db:"specialization" json:"specialization,omitempty"`
}

type CreateDoctorRequest struct {
	Name           string `form:"name" binding:"required"`
	Specialization string `form:"specialization"`
}

func (r *CreateDoctorRequest) ToDoctor() *Doctor {
	return &Doctor{
		Name:           r.Name,
		Specialization: r.Specialization,
	}
}
