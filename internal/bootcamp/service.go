package bootcamp

//go:generate mockgen -source=service.go -destination=mock_service.go -package=bootcamp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bootcamp-api/internal/auth"
	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/geo"
	"bootcamp-api/pkg/geocoder"
	"bootcamp-api/pkg/logger"
	"bootcamp-api/pkg/query"
	"bootcamp-api/pkg/sanitize"
	"bootcamp-api/pkg/storage"
)

// Dependent owns documents that reference a bootcamp and must go with it.
type Dependent interface {
	DeleteByBootcamp(ctx context.Context, bootcampId string) error
}

type Service interface {
	GetBootcamps(ctx context.Context, descriptor *query.Descriptor) (*query.Result[BootcampDocument], error)
	GetBootcamp(ctx context.Context, bootcampId string) (*BootcampDocument, error)
	GetBootcampsInRadius(ctx context.Context, zipcode string, distanceMiles float64) ([]BootcampDocument, error)
	CreateBootcamp(ctx context.Context, requester *user.UserDocument, bootcamp *CreateBootcampPayload) (*BootcampDocument, error)
	UpdateBootcamp(
		ctx context.Context, requester *user.UserDocument, bootcampId string, bootcamp *UpdateBootcampPayload,
	) (*BootcampDocument, error)
	DeleteBootcamp(ctx context.Context, requester *user.UserDocument, bootcampId string) error
	UploadPhoto(ctx context.Context, requester *user.UserDocument, bootcampId string, photo *Photo) (string, error)
}

type service struct {
	bootcampRepository Repository
	geocoder           geocoder.Geocoder
	storage            storage.Storage
	maxFileSize        int64
	dependents         []Dependent
}

func NewService(
	bootcampRepository Repository,
	geocoder geocoder.Geocoder,
	storage storage.Storage,
	maxFileSize int64,
	dependents ...Dependent,
) Service {
	return &service{
		bootcampRepository: bootcampRepository,
		geocoder:           geocoder,
		storage:            storage,
		maxFileSize:        maxFileSize,
		dependents:         dependents,
	}
}

func (s *service) GetBootcamps(
	ctx context.Context, descriptor *query.Descriptor,
) (*query.Result[BootcampDocument], error) {
	return s.bootcampRepository.FindBootcamps(ctx, descriptor)
}

func (s *service) GetBootcamp(ctx context.Context, bootcampId string) (*BootcampDocument, error) {
	return s.bootcampRepository.FindBootcampWithId(ctx, bootcampId)
}

func (s *service) GetBootcampsInRadius(
	ctx context.Context, zipcode string, distanceMiles float64,
) ([]BootcampDocument, error) {
	if err := geo.ValidateDistance(distanceMiles); err != nil {
		return nil, cerror.ValidationError(err.Error()).
			WithFields(zap.Float64("distance", distanceMiles))
	}

	location, err := s.geocoder.Geocode(ctx, zipcode)
	if err != nil {
		return nil, err
	}

	region, err := geo.NewRegion(location.Point, distanceMiles)
	if err != nil {
		return nil, cerror.ValidationError(err.Error())
	}

	return s.bootcampRepository.FindBootcampsWithin(ctx, region)
}

func (s *service) CreateBootcamp(
	ctx context.Context, requester *user.UserDocument, bootcamp *CreateBootcampPayload,
) (*BootcampDocument, error) {
	if requester.Role != user.RoleAdmin {
		published, err := s.bootcampRepository.CountBootcampsWithUser(ctx, requester.Id)
		if err != nil {
			return nil, err
		}
		if published > 0 {
			return nil, cerror.ValidationError(
				fmt.Sprintf("the user with id %s has already published a bootcamp", requester.Id),
			)
		}
	}

	location, err := s.locate(ctx, bootcamp.Address)
	if err != nil {
		return nil, err
	}

	name := sanitize.Text(bootcamp.Name)
	document := &BootcampDocument{
		Id:            uuid.New().String(),
		Name:          name,
		Slug:          Slugify(name),
		Description:   sanitize.Text(bootcamp.Description),
		Website:       bootcamp.Website,
		Phone:         bootcamp.Phone,
		Email:         bootcamp.Email,
		Location:      location,
		Careers:       bootcamp.Careers,
		Photo:         DefaultPhoto,
		Housing:       bootcamp.Housing,
		JobAssistance: bootcamp.JobAssistance,
		JobGuarantee:  bootcamp.JobGuarantee,
		AcceptGi:      bootcamp.AcceptGi,
		CreatedAt:     time.Now().UTC(),
		User:          requester.Id,
	}
	err = s.bootcampRepository.InsertBootcamp(ctx, document)
	if err != nil {
		return nil, err
	}

	return document, nil
}

func (s *service) UpdateBootcamp(
	ctx context.Context, requester *user.UserDocument, bootcampId string, bootcamp *UpdateBootcampPayload,
) (*BootcampDocument, error) {
	found, err := s.findOwned(ctx, requester, bootcampId)
	if err != nil {
		return nil, err
	}

	update := &UpdateBootcampDocument{
		Name:          sanitize.Text(bootcamp.Name),
		Description:   sanitize.Text(bootcamp.Description),
		Website:       bootcamp.Website,
		Phone:         bootcamp.Phone,
		Email:         bootcamp.Email,
		Careers:       bootcamp.Careers,
		Housing:       bootcamp.Housing,
		JobAssistance: bootcamp.JobAssistance,
		JobGuarantee:  bootcamp.JobGuarantee,
		AcceptGi:      bootcamp.AcceptGi,
	}
	if update.Name != "" {
		update.Slug = Slugify(update.Name)
	}
	if bootcamp.Address != "" {
		update.Location, err = s.locate(ctx, bootcamp.Address)
		if err != nil {
			return nil, err
		}
	}
	if update.IsEmpty() {
		return found, nil
	}

	return s.bootcampRepository.UpdateBootcampById(ctx, bootcampId, update)
}

// DeleteBootcamp removes the dependents before the bootcamp itself.
func (s *service) DeleteBootcamp(ctx context.Context, requester *user.UserDocument, bootcampId string) error {
	_, err := s.findOwned(ctx, requester, bootcampId)
	if err != nil {
		return err
	}

	for _, dependent := range s.dependents {
		err = dependent.DeleteByBootcamp(ctx, bootcampId)
		if err != nil {
			return err
		}
	}

	return s.bootcampRepository.DeleteBootcampById(ctx, bootcampId)
}

func (s *service) UploadPhoto(
	ctx context.Context, requester *user.UserDocument, bootcampId string, photo *Photo,
) (string, error) {
	_, err := s.findOwned(ctx, requester, bootcampId)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(photo.ContentType, "image") {
		return "", cerror.ValidationError("please upload an image file").
			WithFields(zap.String("contentType", photo.ContentType))
	}
	if photo.Size > s.maxFileSize {
		return "", cerror.ValidationError(
			fmt.Sprintf("please upload an image less than %d bytes", s.maxFileSize),
		)
	}

	name := PhotoPrefix + bootcampId + filepath.Ext(filepath.Base(photo.Filename))
	err = s.storage.Save(ctx, name, photo.ContentType, photo.Body)
	if err != nil {
		return "", err
	}

	_, err = s.bootcampRepository.UpdateBootcampById(ctx, bootcampId, &UpdateBootcampDocument{Photo: name})
	if err != nil {
		return "", err
	}

	logger.FromContext(ctx).Infow("bootcamp photo stored", zap.String("photo", name))
	return name, nil
}

func (s *service) findOwned(ctx context.Context, requester *user.UserDocument, bootcampId string) (*BootcampDocument, error) {
	found, err := s.bootcampRepository.FindBootcampWithId(ctx, bootcampId)
	if err != nil {
		return nil, err
	}

	err = auth.AuthorizeOwnership(found.User, requester, "bootcamp")
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (s *service) locate(ctx context.Context, address string) (*Location, error) {
	location, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	return &Location{
		GeoJSON:          geo.NewGeoJSON(location.Point),
		FormattedAddress: location.FormattedAddress,
		Street:           location.Street,
		City:             location.City,
		State:            location.State,
		Zipcode:          location.Zipcode,
		Country:          location.Country,
	}, nil
}

// Slugify lowercases name and joins its alphanumeric runs with dashes.
func Slugify(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	return strings.Join(words, "-")
}
