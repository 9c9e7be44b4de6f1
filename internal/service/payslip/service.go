package payslip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/hriscore/payroll-engine-go/internal/domain/contract"
	"github.com/hriscore/payroll-engine-go/internal/domain/employee"
	"github.com/hriscore/payroll-engine-go/internal/domain/paycomponent"
	"github.com/hriscore/payroll-engine-go/internal/domain/payslip"
	"github.com/hriscore/payroll-engine-go/internal/domain/tax"
	"github.com/hriscore/payroll-engine-go/internal/domain/workcalendar"
	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
	"golang.org/x/sync/errgroup"

	attendanceDomain "github.com/hriscore/payroll-engine-go/internal/domain/attendance"
	leaveDomain "github.com/hriscore/payroll-engine-go/internal/domain/leave"
)

type PayslipServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	contractRepo contract.ContractRepository
	attRepo      attendanceDomain.AttendanceRepository
	leaveRepo    leaveDomain.LeaveRepository
	calendarRepo workcalendar.CalendarRepository
	catalogRepo  paycomponent.CatalogRepository
	taxRepo      tax.TaxRepository
	payslipRepo  payslip.PayslipRepository
	pipeline     *Pipeline
	logger       *slog.Logger
	batchWorkers int
}

func NewPayslipService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	contractRepo contract.ContractRepository,
	attRepo attendanceDomain.AttendanceRepository,
	leaveRepo leaveDomain.LeaveRepository,
	calendarRepo workcalendar.CalendarRepository,
	catalogRepo paycomponent.CatalogRepository,
	taxRepo tax.TaxRepository,
	payslipRepo payslip.PayslipRepository,
	logger *slog.Logger,
	batchWorkers int,
) payslip.PayslipService {
	if batchWorkers < 1 {
		batchWorkers = 1
	}
	return &PayslipServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		contractRepo: contractRepo,
		attRepo:      attRepo,
		leaveRepo:    leaveRepo,
		calendarRepo: calendarRepo,
		catalogRepo:  catalogRepo,
		taxRepo:      taxRepo,
		payslipRepo:  payslipRepo,
		pipeline:     NewPipeline(logger),
		logger:       logger,
		batchWorkers: batchWorkers,
	}
}

// catalogSnapshot is the shared, read-only part of a batch run: the
// rule set, calendar data and bracket tables fetched once up front.
// Hot-reloading rules mid-batch is deliberately impossible; a new run
// takes a new snapshot.
type catalogSnapshot struct {
	holidays   []workcalendar.Holiday
	leaveRules []workcalendar.CompanyLeaveRule
	allowances []paycomponent.Definition
	deductions []paycomponent.Definition
	brackets   map[string][]tax.Bracket // filing status ID -> brackets
}

func (s *PayslipServiceImpl) loadSnapshot(ctx context.Context, period payslip.Period) (*catalogSnapshot, error) {
	holidays, err := s.calendarRepo.ListHolidaysInRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	leaveRules, err := s.calendarRepo.ListCompanyLeaveRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load company leave rules: %w", err)
	}
	allowances, err := s.catalogRepo.ListActive(ctx, paycomponent.KindAllowance)
	if err != nil {
		return nil, fmt.Errorf("failed to load allowances: %w", err)
	}
	deductions, err := s.catalogRepo.ListActive(ctx, paycomponent.KindDeduction)
	if err != nil {
		return nil, fmt.Errorf("failed to load deductions: %w", err)
	}
	return &catalogSnapshot{
		holidays:   holidays,
		leaveRules: leaveRules,
		allowances: allowances,
		deductions: deductions,
		brackets:   make(map[string][]tax.Bracket),
	}, nil
}

// bracketsFor lazily loads and caches the bracket table of one filing
// status. Guarded by mu during batch runs.
func (s *PayslipServiceImpl) bracketsFor(ctx context.Context, snap *catalogSnapshot, mu *sync.Mutex, filingStatusID *string) ([]tax.Bracket, error) {
	if filingStatusID == nil {
		return nil, nil
	}
	mu.Lock()
	cached, ok := snap.brackets[*filingStatusID]
	mu.Unlock()
	if ok {
		return cached, nil
	}
	brackets, err := s.taxRepo.ListBracketsByFilingStatus(ctx, *filingStatusID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax brackets: %w", err)
	}
	mu.Lock()
	snap.brackets[*filingStatusID] = brackets
	mu.Unlock()
	return brackets, nil
}

func (s *PayslipServiceImpl) GeneratePayslip(ctx context.Context, employeeID string, period payslip.Period) (payslip.Result, error) {
	snap, err := s.loadSnapshot(ctx, period)
	if err != nil {
		return payslip.Result{}, err
	}
	var mu sync.Mutex
	return s.generateOne(ctx, employeeID, period, snap, &mu)
}

func (s *PayslipServiceImpl) generateOne(ctx context.Context, employeeID string, period payslip.Period, snap *catalogSnapshot, mu *sync.Mutex) (payslip.Result, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payslip.Result{}, err
	}

	c, err := s.contractRepo.GetActiveByEmployeeID(ctx, employeeID)
	if err != nil {
		return payslip.Result{}, err
	}

	if _, err := s.payslipRepo.GetByEmployeePeriod(ctx, employeeID, period); err == nil {
		return payslip.Result{}, payslip.ErrPayslipExists
	} else if !errors.Is(err, payslip.ErrPayslipNotFound) {
		return payslip.Result{}, err
	}

	records, err := s.attRepo.ListValidatedByEmployeeRange(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return payslip.Result{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	leaves, err := s.leaveRepo.ListApprovedByEmployeeRange(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return payslip.Result{}, fmt.Errorf("failed to load leave requests: %w", err)
	}
	brackets, err := s.bracketsFor(ctx, snap, mu, c.FilingStatusID)
	if err != nil {
		return payslip.Result{}, err
	}

	result, err := s.pipeline.Compute(Inputs{
		Employee:          emp,
		Contract:          c,
		Period:            period,
		Attendance:        records,
		Leaves:            leaves,
		Holidays:          snap.holidays,
		CompanyLeaveRules: snap.leaveRules,
		Allowances:        snap.allowances,
		Deductions:        snap.deductions,
		TaxBrackets:       brackets,
	})
	if err != nil {
		return payslip.Result{}, err
	}

	result.ID = uuid.NewString()
	created, err := s.payslipRepo.Create(ctx, result)
	if err != nil {
		return payslip.Result{}, fmt.Errorf("failed to persist payslip for employee %s: %w", employeeID, err)
	}
	return created, nil
}

func (s *PayslipServiceImpl) GeneratePayslips(ctx context.Context, req payslip.GeneratePayslipsRequest) (payslip.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.BatchResponse{}, err
	}
	period, err := req.Period()
	if err != nil {
		return payslip.BatchResponse{}, err
	}

	var employees []employee.Employee
	if len(req.EmployeeIDs) > 0 {
		employees, err = s.employeeRepo.GetActiveByIDs(ctx, req.EmployeeIDs)
	} else {
		employees, err = s.employeeRepo.GetAllActive(ctx)
	}
	if err != nil {
		return payslip.BatchResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	snap, err := s.loadSnapshot(ctx, period)
	if err != nil {
		return payslip.BatchResponse{}, err
	}

	// Each employee's computation is independent; run them in parallel
	// and collect per-employee failures instead of aborting the batch.
	var (
		mu       sync.Mutex
		response payslip.BatchResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)
	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			result, err := s.generateOne(gctx, emp.ID, period, snap, &mu)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Warn("payslip generation failed",
					slog.String("employee_id", emp.ID),
					slog.String("error", err.Error()),
				)
				response.Failures = append(response.Failures, payslip.EmployeeError{
					EmployeeID: emp.ID,
					Error:      err.Error(),
				})
				return nil
			}
			response.Payslips = append(response.Payslips, payslip.ToResponse(result))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return payslip.BatchResponse{}, err
	}
	return response, nil
}

func (s *PayslipServiceImpl) GetPayslip(ctx context.Context, id string) (payslip.Result, error) {
	return s.payslipRepo.GetByID(ctx, id)
}

func (s *PayslipServiceImpl) ListPayslips(ctx context.Context, filter payslip.Filter) ([]payslip.Result, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.payslipRepo.List(ctx, filter)
}
