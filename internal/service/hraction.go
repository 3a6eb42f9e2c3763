package service

import (
	"context"
	"time"

	"github.com/rs/xid"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal/storage"
)

type HRActionRequest struct {
	EmployeeID  string `json:"employee_id" validate:"required"`
	ActionType  string `json:"action_type" validate:"required,oneof=reduce_workload time_off counseling task_redistribution schedule_1on1 immediate_intervention other"`
	Details     string `json:"details"`
	HRManagerID string `json:"hr_manager_id"`
}

func ValidateHRActionRequest(req *HRActionRequest) error {
	return validate.Struct(req)
}

func CreateAction(ctx context.Context, repo storage.ActionRepository, emp *internal.Employee, req *HRActionRequest) (*internal.HRAction, error) {
	action := &internal.HRAction{
		ID:           xid.New().String(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		ActionType:   req.ActionType,
		Details:      req.Details,
		HRManagerID:  req.HRManagerID,
		Status:       "active",
		CreatedAt:    time.Now(),
	}
	if err := repo.SaveAction(ctx, action); err != nil {
		return nil, err
	}
	return action, nil
}
