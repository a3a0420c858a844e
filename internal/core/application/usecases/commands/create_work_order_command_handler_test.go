package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/domain/model/device"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/staff"
	"fleetops/internal/core/domain/model/workorder"
	"fleetops/internal/core/ports"
	"fleetops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) ExistsInProgress(
	ctx context.Context, deviceCode string, orderType workorder.OrderType,
) (bool, error) {
	args := m.Called(ctx, deviceCode, orderType)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkOrderRepository) GetAllCreatedBefore(
	ctx context.Context, cutoff time.Time,
) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

type MockWorkOrderUoW struct{ mock.Mock }

func (m *MockWorkOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockDeviceDirectory struct{ mock.Mock }

func (m *MockDeviceDirectory) LookupByCode(ctx context.Context, code string) (device.Device, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(device.Device), args.Error(1)
}

type MockStaffDirectory struct{ mock.Mock }

func (m *MockStaffDirectory) LookupByID(ctx context.Context, id kernel.UUID) (staff.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(staff.Employee), args.Error(1)
}

type MockSequenceAllocator struct{ mock.Mock }

func (m *MockSequenceAllocator) Next(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func testDevice() device.Device {
	return device.Device{
		Code:     "VM-0001",
		Status:   device.Running,
		RegionID: 7,
		Address:  "12 Harbour Rd",
	}
}

func testEmployee(id kernel.UUID) staff.Employee {
	return staff.Employee{ID: id, Name: "Chen Wei", RegionID: 7, Active: true}
}

func TestCreateWorkOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	assigneeID := kernel.NewUUID()
	cmd, _ := commands.NewCreateWorkOrderCommand(
		kernel.NewUUID(), "VM-0001", workorder.TypeRepair, assigneeID, nil,
	)

	devices := new(MockDeviceDirectory)
	employees := new(MockStaffDirectory)
	allocator := new(MockSequenceAllocator)
	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		devices.On("LookupByCode", ctx, "VM-0001").Return(testDevice(), nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("ExistsInProgress", ctx, "VM-0001", workorder.TypeRepair).Return(false, nil).Once(),
		employees.On("LookupByID", ctx, assigneeID).Return(testEmployee(assigneeID), nil).Once(),
		allocator.On("Next", ctx, mock.AnythingOfType("time.Time")).Return(int64(1), nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*workorder.WorkOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory, devices, employees, allocator)
	code, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(code.String(), "0001"), "sequence 1 renders as suffix 0001")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	devices.AssertExpectations(t)
	employees.AssertExpectations(t)
	allocator.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateWorkOrderCommand{} // not constructed properly
	h := commands.NewCreateWorkOrderCommandHandler(
		new(MockWorkOrderUoWFactory), new(MockDeviceDirectory), new(MockStaffDirectory), new(MockSequenceAllocator),
	)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateWorkOrderCommandHandler_Handle_DeviceNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWorkOrderCommand(
		kernel.NewUUID(), "VM-0404", workorder.TypeRepair, kernel.NewUUID(), nil,
	)

	devices := new(MockDeviceDirectory)
	devices.On("LookupByCode", ctx, "VM-0404").
		Return(device.Device{}, errs.NewObjectNotFoundError("deviceCode", "VM-0404")).Once()

	h := commands.NewCreateWorkOrderCommandHandler(
		new(MockWorkOrderUoWFactory), devices, new(MockStaffDirectory), new(MockSequenceAllocator),
	)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	devices.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_DeviceStateRejected(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateWorkOrderCommand(
		kernel.NewUUID(), "VM-0001", workorder.TypeDeploy, kernel.NewUUID(), nil,
	)

	devices := new(MockDeviceDirectory)
	devices.On("LookupByCode", ctx, "VM-0001").Return(testDevice(), nil).Once()

	h := commands.NewCreateWorkOrderCommandHandler(
		new(MockWorkOrderUoWFactory), devices, new(MockStaffDirectory), new(MockSequenceAllocator),
	)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	devices.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_RegionMismatch(t *testing.T) {
	ctx := t.Context()
	assigneeID := kernel.NewUUID()
	cmd, _ := commands.NewCreateWorkOrderCommand(
		kernel.NewUUID(), "VM-0001", workorder.TypeRepair, assigneeID, nil,
	)

	otherRegion := testEmployee(assigneeID)
	otherRegion.RegionID = 3

	devices := new(MockDeviceDirectory)
	employees := new(MockStaffDirectory)
	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		devices.On("LookupByCode", ctx, "VM-0001").Return(testDevice(), nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("ExistsInProgress", ctx, "VM-0001", workorder.TypeRepair).Return(false, nil).Once(),
		employees.On("LookupByID", ctx, assigneeID).Return(otherRegion, nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory, devices, employees, new(MockSequenceAllocator))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrRegionMismatch)
	devices.AssertExpectations(t)
	employees.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_AllocatorError(t *testing.T) {
	ctx := t.Context()
	assigneeID := kernel.NewUUID()
	cmd, _ := commands.NewCreateWorkOrderCommand(
		kernel.NewUUID(), "VM-0001", workorder.TypeRepair, assigneeID, nil,
	)

	devices := new(MockDeviceDirectory)
	employees := new(MockStaffDirectory)
	allocator := new(MockSequenceAllocator)
	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		devices.On("LookupByCode", ctx, "VM-0001").Return(testDevice(), nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("ExistsInProgress", ctx, "VM-0001", workorder.TypeRepair).Return(false, nil).Once(),
		employees.On("LookupByID", ctx, assigneeID).Return(testEmployee(assigneeID), nil).Once(),
		allocator.On("Next", ctx, mock.AnythingOfType("time.Time")).
			Return(int64(0), errors.New("redis unavailable")).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory, devices, employees, allocator)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	allocator.AssertExpectations(t)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateWorkOrderCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	assigneeID := kernel.NewUUID()
	cmd, _ := commands.NewCreateWorkOrderCommand(
		kernel.NewUUID(), "VM-0001", workorder.TypeRepair, assigneeID, nil,
	)

	devices := new(MockDeviceDirectory)
	employees := new(MockStaffDirectory)
	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		devices.On("LookupByCode", ctx, "VM-0001").Return(testDevice(), nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("ExistsInProgress", ctx, "VM-0001", workorder.TypeRepair).Return(true, nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	allocator := new(MockSequenceAllocator)
	h := commands.NewCreateWorkOrderCommandHandler(factory, devices, employees, allocator)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	allocator.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	employees.AssertNotCalled(t, "LookupByID", mock.Anything, mock.Anything)
}

// An in-flight order of the same type must win over any assignee problem:
// the conflict check runs before the assignee is even resolved.
func TestCreateWorkOrderCommandHandler_Handle_ConflictPrecedesAssigneeChecks(t *testing.T) {
	ctx := t.Context()
	assigneeID := kernel.NewUUID()
	detail, err := workorder.NewDetail("1-1", 1001, 5)
	require.NoError(t, err)
	cmd, _ := commands.NewCreateWorkOrderCommand(
		kernel.NewUUID(), "VM-0001", workorder.TypeSupply, assigneeID, []workorder.Detail{detail},
	)

	devices := new(MockDeviceDirectory)
	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		devices.On("LookupByCode", ctx, "VM-0001").Return(testDevice(), nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("ExistsInProgress", ctx, "VM-0001", workorder.TypeSupply).Return(true, nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	// This assignee would fail resolution, but the conflict must be
	// reported first.
	employees := new(MockStaffDirectory)
	employees.On("LookupByID", ctx, assigneeID).
		Return(staff.Employee{}, errs.NewObjectNotFoundError("assigneeId", assigneeID.String())).Maybe()

	h := commands.NewCreateWorkOrderCommandHandler(factory, devices, employees, new(MockSequenceAllocator))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	employees.AssertNotCalled(t, "LookupByID", mock.Anything, mock.Anything)
}

func TestCreateWorkOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	assigneeID := kernel.NewUUID()
	cmd, _ := commands.NewCreateWorkOrderCommand(
		kernel.NewUUID(), "VM-0001", workorder.TypeRepair, assigneeID, nil,
	)

	devices := new(MockDeviceDirectory)
	employees := new(MockStaffDirectory)
	allocator := new(MockSequenceAllocator)
	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		devices.On("LookupByCode", ctx, "VM-0001").Return(testDevice(), nil).Once(),
		employees.On("LookupByID", ctx, assigneeID).Return(testEmployee(assigneeID), nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("ExistsInProgress", ctx, "VM-0001", workorder.TypeRepair).Return(false, nil).Once(),
		allocator.On("Next", ctx, mock.AnythingOfType("time.Time")).Return(int64(1), nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*workorder.WorkOrder")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory, devices, employees, allocator)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
