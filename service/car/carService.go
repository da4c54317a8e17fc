package carsvc

import (
	"context"
	"errors"

	"carrental/model"
	repo "carrental/repository/car"
)

type ErrCode string

const ErrBadInput ErrCode = "BAD_INPUT"

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Filter = repo.Filter

type Repo interface {
	ListAvailable(ctx context.Context, f Filter) ([]model.Car, error)
	Create(ctx context.Context, car *model.Car) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Car, error)
}

type Service interface {
	ListAvailable(ctx context.Context, f Filter) ([]model.Car, error)
	Create(ctx context.Context, car *model.Car) (int64, error)
	Detail(ctx context.Context, id int64) (*model.Car, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) ListAvailable(ctx context.Context, f Filter) ([]model.Car, error) {
	return s.r.ListAvailable(ctx, f)
}

func (s *service) Create(ctx context.Context, car *model.Car) (int64, error) {
	if car.Model == "" || car.Type == "" || car.DailyRate < 0 {
		return 0, codedError{code: ErrBadInput}
	}
	if car.Features == nil {
		car.Features = []string{}
	}
	return s.r.Create(ctx, car)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Car, error) {
	return s.r.GetByID(ctx, id)
}
