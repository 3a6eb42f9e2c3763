package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

type fakeActionRepo struct {
	saved []*internal.HRAction
}

func (r *fakeActionRepo) SaveAction(_ context.Context, action *internal.HRAction) error {
	r.saved = append(r.saved, action)
	return nil
}

func (r *fakeActionRepo) ListActions(_ context.Context, _ string) ([]internal.HRAction, error) {
	return nil, nil
}

func (r *fakeActionRepo) CountActions(_ context.Context) (int, error) {
	return len(r.saved), nil
}

func (r *fakeActionRepo) CompleteAction(_ context.Context, _ string, _ time.Time) (*internal.HRAction, error) {
	return nil, nil
}

func TestValidateHRActionRequest(t *testing.T) {
	valid := &HRActionRequest{
		EmployeeID: "EMP001",
		ActionType: "reduce_workload",
	}
	assert.NoError(t, ValidateHRActionRequest(valid))

	badType := &HRActionRequest{
		EmployeeID: "EMP001",
		ActionType: "send_pizza",
	}
	assert.Error(t, ValidateHRActionRequest(badType))

	noEmployee := &HRActionRequest{ActionType: "time_off"}
	assert.Error(t, ValidateHRActionRequest(noEmployee))
}

func TestCreateAction(t *testing.T) {
	repo := &fakeActionRepo{}
	emp := &internal.Employee{ID: "EMP001", Name: "Dana Reyes"}

	action, err := CreateAction(context.Background(), repo, emp, &HRActionRequest{
		EmployeeID:  "EMP001",
		ActionType:  "schedule_1on1",
		Details:     "Check in about the release crunch.",
		HRManagerID: "MGR001",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, action.ID)
	assert.Equal(t, "active", action.Status)
	assert.Equal(t, "Dana Reyes", action.EmployeeName)
	assert.Nil(t, action.CompletedAt)
	assert.Len(t, repo.saved, 1)
}
