package bootcamp

import (
	"io"
	"reflect"
	"time"

	"bootcamp-api/pkg/geo"
)

const (
	DefaultPhoto = "no-photo.jpg"
	PhotoPrefix  = "photo_"

	AverageCostField   = "averageCost"
	AverageRatingField = "averageRating"
)

// Location is a GeoJSON point enriched with the geocoded address parts.
type Location struct {
	geo.GeoJSON      `bson:",inline"`
	FormattedAddress string `json:"formattedAddress" bson:"formattedAddress"`
	Street           string `json:"street" bson:"street"`
	City             string `json:"city" bson:"city"`
	State            string `json:"state" bson:"state"`
	Zipcode          string `json:"zipcode" bson:"zipcode"`
	Country          string `json:"country" bson:"country"`
}

type CourseSummary struct {
	Id      string  `json:"_id" bson:"_id"`
	Title   string  `json:"title" bson:"title"`
	Weeks   int     `json:"weeks" bson:"weeks"`
	Tuition float64 `json:"tuition" bson:"tuition"`
}

// Summary is the bootcamp shape embedded into courses and reviews.
type Summary struct {
	Id          string `json:"_id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

type BootcampDocument struct {
	Id            string          `json:"_id" bson:"_id"`
	Name          string          `json:"name" bson:"name"`
	Slug          string          `json:"slug" bson:"slug"`
	Description   string          `json:"description" bson:"description"`
	Website       string          `json:"website,omitempty" bson:"website,omitempty"`
	Phone         string          `json:"phone,omitempty" bson:"phone,omitempty"`
	Email         string          `json:"email,omitempty" bson:"email,omitempty"`
	Location      *Location       `json:"location,omitempty" bson:"location,omitempty"`
	Careers       []string        `json:"careers" bson:"careers"`
	AverageRating *float64        `json:"averageRating,omitempty" bson:"averageRating,omitempty"`
	AverageCost   *float64        `json:"averageCost,omitempty" bson:"averageCost,omitempty"`
	Photo         string          `json:"photo" bson:"photo"`
	Housing       bool            `json:"housing" bson:"housing"`
	JobAssistance bool            `json:"jobAssistance" bson:"jobAssistance"`
	JobGuarantee  bool            `json:"jobGuarantee" bson:"jobGuarantee"`
	AcceptGi      bool            `json:"acceptGi" bson:"acceptGi"`
	CreatedAt     time.Time       `json:"createdAt" bson:"createdAt"`
	User          string          `json:"user" bson:"user"`
	Courses       []CourseSummary `json:"courses,omitempty" bson:"courses,omitempty"`
}

func (b *BootcampDocument) Summary() *Summary {
	return &Summary{
		Id:          b.Id,
		Name:        b.Name,
		Description: b.Description,
	}
}

// UpdateBootcampDocument sets only the non empty fields.
type UpdateBootcampDocument struct {
	Name          string    `bson:"name,omitempty"`
	Slug          string    `bson:"slug,omitempty"`
	Description   string    `bson:"description,omitempty"`
	Website       string    `bson:"website,omitempty"`
	Phone         string    `bson:"phone,omitempty"`
	Email         string    `bson:"email,omitempty"`
	Location      *Location `bson:"location,omitempty"`
	Careers       []string  `bson:"careers,omitempty"`
	Photo         string    `bson:"photo,omitempty"`
	Housing       *bool     `bson:"housing,omitempty"`
	JobAssistance *bool     `bson:"jobAssistance,omitempty"`
	JobGuarantee  *bool     `bson:"jobGuarantee,omitempty"`
	AcceptGi      *bool     `bson:"acceptGi,omitempty"`
}

func (u *UpdateBootcampDocument) IsEmpty() bool {
	return reflect.ValueOf(*u).IsZero()
}

type CreateBootcampPayload struct {
	Name          string   `json:"name" validate:"required,max=50"`
	Description   string   `json:"description" validate:"required,max=500"`
	Website       string   `json:"website" validate:"omitempty,url"`
	Phone         string   `json:"phone" validate:"omitempty,max=20"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Address       string   `json:"address" validate:"required"`
	Careers       []string `json:"careers" validate:"required,min=1,dive,oneof='Web Development' 'Mobile Development' UI/UX 'Data Science' Business Other"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"jobAssistance"`
	JobGuarantee  bool     `json:"jobGuarantee"`
	AcceptGi      bool     `json:"acceptGi"`
}

type UpdateBootcampPayload struct {
	Name          string   `json:"name" validate:"omitempty,max=50"`
	Description   string   `json:"description" validate:"omitempty,max=500"`
	Website       string   `json:"website" validate:"omitempty,url"`
	Phone         string   `json:"phone" validate:"omitempty,max=20"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Address       string   `json:"address"`
	Careers       []string `json:"careers" validate:"omitempty,dive,oneof='Web Development' 'Mobile Development' UI/UX 'Data Science' Business Other"`
	Housing       *bool    `json:"housing"`
	JobAssistance *bool    `json:"jobAssistance"`
	JobGuarantee  *bool    `json:"jobGuarantee"`
	AcceptGi      *bool    `json:"acceptGi"`
}

// Photo is an uploaded image waiting to be stored.
type Photo struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type BootcampResponse struct {
	Success bool              `json:"success"`
	Data    *BootcampDocument `json:"data"`
}

type BootcampsResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Data    []BootcampDocument `json:"data"`
}

type PhotoResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
}
