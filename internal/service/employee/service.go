package employee

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/credential"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/employee"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/civiltime"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/database"
	"github.com/tapatrack/tapatrack-backend-go/internal/repository/postgresql"
)

type employeeService struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	credentialRepo credential.CredentialRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	credentialRepo credential.CredentialRepository,
) employee.EmployeeService {
	return &employeeService{
		db:             db,
		employeeRepo:   employeeRepo,
		credentialRepo: credentialRepo,
	}
}

// Register implements employee.EmployeeService. The employee and their QR
// credential are created in one transaction; an employee without a
// scannable code is never observable.
func (s *employeeService) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:         uuid.NewString(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		HourlyRate: req.HourlyRate,
		IsActive:   true,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		created, err := s.employeeRepo.Create(txCtx, emp)
		if err != nil {
			return err
		}
		emp = created

		cred := credential.Credential{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			Code:       uuid.NewString(),
			IsActive:   true,
		}
		_, err = s.credentialRepo.Create(txCtx, cred)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(emp), nil
}

// Update implements employee.EmployeeService.
func (s *employeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.HourlyRate != nil {
		emp.HourlyRate = *req.HourlyRate
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(updated), nil
}

// Get implements employee.EmployeeService.
func (s *employeeService) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *employeeService) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapToEmployeeResponse(emp))
	}

	return responses, nil
}

// Deactivate implements employee.EmployeeService.
func (s *employeeService) Deactivate(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !emp.IsActive {
		return employee.ErrEmployeeAlreadyInactive
	}

	return s.employeeRepo.SetActive(ctx, id, false)
}

// Reactivate implements employee.EmployeeService.
func (s *employeeService) Reactivate(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp.IsActive {
		return employee.ErrEmployeeAlreadyActive
	}

	return s.employeeRepo.SetActive(ctx, id, true)
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Email:      emp.Email,
		HourlyRate: emp.HourlyRate,
		IsActive:   emp.IsActive,
		CreatedAt:  emp.CreatedAt.In(civiltime.Zone).Format(time.RFC3339),
		UpdatedAt:  emp.UpdatedAt.In(civiltime.Zone).Format(time.RFC3339),
	}
}
