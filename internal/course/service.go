package course

//go:generate mockgen -source=service.go -destination=mock_service.go -package=course

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bootcamp-api/internal/auth"
	"bootcamp-api/internal/bootcamp"
	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/logger"
	"bootcamp-api/pkg/query"
	"bootcamp-api/pkg/sanitize"
)

type Service interface {
	GetCourses(ctx context.Context, bootcampId string, descriptor *query.Descriptor) (*query.Result[CourseDocument], error)
	GetCourse(ctx context.Context, courseId string) (*CourseDocument, error)
	AddCourse(ctx context.Context, requester *user.UserDocument, bootcampId string, course *CreateCoursePayload) (*CourseDocument, error)
	UpdateCourse(ctx context.Context, requester *user.UserDocument, courseId string, course *UpdateCoursePayload) (*CourseDocument, error)
	DeleteCourse(ctx context.Context, requester *user.UserDocument, courseId string) error
}

type service struct {
	courseRepository   Repository
	bootcampRepository bootcamp.Repository
}

func NewService(courseRepository Repository, bootcampRepository bootcamp.Repository) Service {
	return &service{
		courseRepository:   courseRepository,
		bootcampRepository: bootcampRepository,
	}
}

func (s *service) GetCourses(
	ctx context.Context, bootcampId string, descriptor *query.Descriptor,
) (*query.Result[CourseDocument], error) {
	return s.courseRepository.FindCourses(ctx, bootcampId, descriptor)
}

func (s *service) GetCourse(ctx context.Context, courseId string) (*CourseDocument, error) {
	course, err := s.courseRepository.FindCourseWithId(ctx, courseId)
	if err != nil {
		return nil, err
	}

	found, err := s.bootcampRepository.FindBootcampWithId(ctx, course.Bootcamp)
	if err != nil {
		if !cerror.Is(err, cerror.KindNotFound) {
			return nil, err
		}

		return course, nil
	}

	course.BootcampDetail = found.Summary()
	return course, nil
}

func (s *service) AddCourse(
	ctx context.Context, requester *user.UserDocument, bootcampId string, course *CreateCoursePayload,
) (*CourseDocument, error) {
	if bootcampId == "" {
		return nil, cerror.ValidationError("please add a bootcamp")
	}

	found, err := s.bootcampRepository.FindBootcampWithId(ctx, bootcampId)
	if err != nil {
		return nil, err
	}

	err = auth.AuthorizeOwnership(found.User, requester, "bootcamp")
	if err != nil {
		return nil, err
	}

	document := &CourseDocument{
		Id:                   uuid.New().String(),
		Title:                sanitize.Text(course.Title),
		Description:          sanitize.Text(course.Description),
		Weeks:                course.Weeks,
		Tuition:              course.Tuition,
		MinimumSkill:         course.MinimumSkill,
		ScholarshipAvailable: course.ScholarshipAvailable,
		CreatedAt:            time.Now().UTC(),
		Bootcamp:             bootcampId,
		User:                 requester.Id,
	}
	err = s.courseRepository.InsertCourse(ctx, document)
	if err != nil {
		return nil, err
	}

	s.refreshAverageCost(ctx, bootcampId)
	return document, nil
}

func (s *service) UpdateCourse(
	ctx context.Context, requester *user.UserDocument, courseId string, course *UpdateCoursePayload,
) (*CourseDocument, error) {
	found, err := s.findOwned(ctx, requester, courseId)
	if err != nil {
		return nil, err
	}

	update := &UpdateCourseDocument{
		Title:                sanitize.Text(course.Title),
		Description:          sanitize.Text(course.Description),
		Weeks:                course.Weeks,
		Tuition:              course.Tuition,
		MinimumSkill:         course.MinimumSkill,
		ScholarshipAvailable: course.ScholarshipAvailable,
	}
	if update.IsEmpty() {
		return found, nil
	}

	updated, err := s.courseRepository.UpdateCourseById(ctx, courseId, update)
	if err != nil {
		return nil, err
	}

	if update.Tuition != 0 {
		s.refreshAverageCost(ctx, updated.Bootcamp)
	}
	return updated, nil
}

func (s *service) DeleteCourse(ctx context.Context, requester *user.UserDocument, courseId string) error {
	found, err := s.findOwned(ctx, requester, courseId)
	if err != nil {
		return err
	}

	err = s.courseRepository.DeleteCourseById(ctx, courseId)
	if err != nil {
		return err
	}

	s.refreshAverageCost(ctx, found.Bootcamp)
	return nil
}

func (s *service) findOwned(ctx context.Context, requester *user.UserDocument, courseId string) (*CourseDocument, error) {
	found, err := s.courseRepository.FindCourseWithId(ctx, courseId)
	if err != nil {
		return nil, err
	}

	err = auth.AuthorizeOwnership(found.User, requester, "course")
	if err != nil {
		return nil, err
	}

	return found, nil
}

// refreshAverageCost stores the rounded mean tuition.
// The course change already succeeded, so failures are only logged.
func (s *service) refreshAverageCost(ctx context.Context, bootcampId string) {
	log := logger.FromContext(ctx).With(zap.String("bootcampId", bootcampId))

	average, err := s.courseRepository.AverageTuition(ctx, bootcampId)
	if err != nil {
		log.Errorw("error occurred while calculate average cost", zap.Error(err))
		return
	}

	if average != nil {
		rounded := RoundAverageCost(*average)
		average = &rounded
	}

	err = s.bootcampRepository.SetAverage(ctx, bootcampId, bootcamp.AverageCostField, average)
	if err != nil {
		log.Errorw("error occurred while store average cost", zap.Error(err))
	}
}

// RoundAverageCost rounds a mean tuition up to the next ten.
func RoundAverageCost(average float64) float64 {
	return math.Ceil(average/10) * 10
}
