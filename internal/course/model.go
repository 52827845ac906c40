package course

import (
	"reflect"
	"time"

	"bootcamp-api/internal/bootcamp"
)

const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

type CourseDocument struct {
	Id                   string            `json:"_id" bson:"_id"`
	Title                string            `json:"title" bson:"title"`
	Description          string            `json:"description" bson:"description"`
	Weeks                int               `json:"weeks" bson:"weeks"`
	Tuition              float64           `json:"tuition" bson:"tuition"`
	MinimumSkill         string            `json:"minimumSkill" bson:"minimumSkill"`
	ScholarshipAvailable bool              `json:"scholarshipAvailable" bson:"scholarshipAvailable"`
	CreatedAt            time.Time         `json:"createdAt" bson:"createdAt"`
	Bootcamp             string            `json:"bootcamp" bson:"bootcamp"`
	User                 string            `json:"user" bson:"user"`
	BootcampDetail       *bootcamp.Summary `json:"bootcampDetail,omitempty" bson:"bootcampDetail,omitempty"`
}

// UpdateCourseDocument sets only the non empty fields.
type UpdateCourseDocument struct {
	Title                string  `bson:"title,omitempty"`
	Description          string  `bson:"description,omitempty"`
	Weeks                int     `bson:"weeks,omitempty"`
	Tuition              float64 `bson:"tuition,omitempty"`
	MinimumSkill         string  `bson:"minimumSkill,omitempty"`
	ScholarshipAvailable *bool   `bson:"scholarshipAvailable,omitempty"`
}

func (u *UpdateCourseDocument) IsEmpty() bool {
	return reflect.ValueOf(*u).IsZero()
}

type CreateCoursePayload struct {
	Title                string  `json:"title" validate:"required,max=100"`
	Description          string  `json:"description" validate:"required"`
	Weeks                int     `json:"weeks" validate:"required,min=1"`
	Tuition              float64 `json:"tuition" validate:"required,gt=0"`
	MinimumSkill         string  `json:"minimumSkill" validate:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool    `json:"scholarshipAvailable"`
	Bootcamp             string  `json:"bootcamp"`
}

type UpdateCoursePayload struct {
	Title                string  `json:"title" validate:"omitempty,max=100"`
	Description          string  `json:"description"`
	Weeks                int     `json:"weeks" validate:"omitempty,min=1"`
	Tuition              float64 `json:"tuition" validate:"omitempty,gt=0"`
	MinimumSkill         string  `json:"minimumSkill" validate:"omitempty,oneof=beginner intermediate advanced"`
	ScholarshipAvailable *bool   `json:"scholarshipAvailable"`
}

type CourseResponse struct {
	Success bool            `json:"success"`
	Data    *CourseDocument `json:"data"`
}
