// service/car/car_service_test.go
package carsvc_test

import (
	"context"
	"errors"
	"testing"

	"carrental/model"
	carsvc "carrental/service/car"
)

type repoMock struct {
	listFn   func(ctx context.Context, f carsvc.Filter) ([]model.Car, error)
	createFn func(ctx context.Context, car *model.Car) (int64, error)
	getFn    func(ctx context.Context, id int64) (*model.Car, error)
}

func (m *repoMock) ListAvailable(ctx context.Context, f carsvc.Filter) ([]model.Car, error) {
	return m.listFn(ctx, f)
}
func (m *repoMock) Create(ctx context.Context, car *model.Car) (int64, error) {
	return m.createFn(ctx, car)
}
func (m *repoMock) GetByID(ctx context.Context, id int64) (*model.Car, error) {
	return m.getFn(ctx, id)
}

func TestCreate_Validation(t *testing.T) {
	s := carsvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), &model.Car{Type: "Sedan", DailyRate: 40}); carsvc.Code(err) != carsvc.ErrBadInput {
		t.Fatalf("expected BAD_INPUT for empty model, got %v", err)
	}
	if _, err := s.Create(context.Background(), &model.Car{Model: "Corolla", DailyRate: 40}); carsvc.Code(err) != carsvc.ErrBadInput {
		t.Fatalf("expected BAD_INPUT for empty type, got %v", err)
	}
	if _, err := s.Create(context.Background(), &model.Car{Model: "Corolla", Type: "Sedan", DailyRate: -1}); carsvc.Code(err) != carsvc.ErrBadInput {
		t.Fatalf("expected BAD_INPUT for negative rate, got %v", err)
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, car *model.Car) (int64, error) {
			if car.Model != "Corolla" || car.Type != "Sedan" || car.DailyRate != 45 {
				return 0, errors.New("bad args")
			}
			if car.Features == nil {
				return 0, errors.New("features must default to an empty list")
			}
			return 42, nil
		},
	}
	s := carsvc.New(m)
	id, err := s.Create(context.Background(), &model.Car{Model: "Corolla", Type: "Sedan", DailyRate: 45})
	if err != nil || id != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", id, err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context, f carsvc.Filter) ([]model.Car, error) {
			return []model.Car{{ID: 1}}, nil
		},
		getFn: func(ctx context.Context, id int64) (*model.Car, error) { return &model.Car{ID: id}, nil },
	}
	s := carsvc.New(m)

	cars, err := s.ListAvailable(context.Background(), carsvc.Filter{})
	if err != nil || len(cars) != 1 {
		t.Fatalf("ListAvailable got %v %v; want one car", cars, err)
	}
	car, err := s.Detail(context.Background(), 9)
	if err != nil || car.ID != 9 {
		t.Fatalf("Detail got %v %v", car, err)
	}
}
