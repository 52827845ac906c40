package review

import (
	"reflect"
	"time"

	"bootcamp-api/internal/bootcamp"
)

type ReviewDocument struct {
	Id             string            `json:"_id" bson:"_id"`
	Title          string            `json:"title" bson:"title"`
	Text           string            `json:"text" bson:"text"`
	Rating         int               `json:"rating" bson:"rating"`
	CreatedAt      time.Time         `json:"createdAt" bson:"createdAt"`
	Bootcamp       string            `json:"bootcamp" bson:"bootcamp"`
	User           string            `json:"user" bson:"user"`
	BootcampDetail *bootcamp.Summary `json:"bootcampDetail,omitempty" bson:"bootcampDetail,omitempty"`
}

// UpdateReviewDocument sets only the non empty fields.
type UpdateReviewDocument struct {
	Title  string `bson:"title,omitempty"`
	Text   string `bson:"text,omitempty"`
	Rating int    `bson:"rating,omitempty"`
}

func (u *UpdateReviewDocument) IsEmpty() bool {
	return reflect.ValueOf(*u).IsZero()
}

type CreateReviewPayload struct {
	Title    string `json:"title" validate:"required,max=100"`
	Text     string `json:"text" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=10"`
	Bootcamp string `json:"bootcamp"`
}

type UpdateReviewPayload struct {
	Title  string `json:"title" validate:"omitempty,max=100"`
	Text   string `json:"text"`
	Rating int    `json:"rating" validate:"omitempty,min=1,max=10"`
}

type ReviewResponse struct {
	Success bool            `json:"success"`
	Data    *ReviewDocument `json:"data"`
}
