package timesheet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tracktm/internal/service/billing"
	"tracktm/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetMaterials(ctx context.Context) ([]storage.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Material), args.Error(1)
}

func (m *MockStorage) GetLaborRoles(ctx context.Context) ([]storage.LaborRole, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.LaborRole), args.Error(1)
}

func (m *MockStorage) GetEquipmentRates(ctx context.Context) ([]storage.EquipmentRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.EquipmentRate), args.Error(1)
}

func (m *MockStorage) GetEmployees(ctx context.Context) ([]storage.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Employee), args.Error(1)
}

func (m *MockStorage) GetEntry(ctx context.Context, jobNumber, entryDate string) (*storage.DailyEntry, error) {
	args := m.Called(ctx, jobNumber, entryDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.DailyEntry), args.Error(1)
}

func (m *MockStorage) GetEntries(ctx context.Context, jobNumber string) ([]storage.DailyEntry, error) {
	args := m.Called(ctx, jobNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.DailyEntry), args.Error(1)
}

func (m *MockStorage) SaveEntry(ctx context.Context, entry storage.DailyEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func TestSaveEntry_MissingJobNumber(t *testing.T) {
	mockStorage := new(MockStorage)
	service := NewService(mockStorage)

	_, err := service.SaveEntry(context.Background(), storage.DailyEntry{EntryDate: "2024-06-01"})

	assert.ErrorIs(t, err, billing.ErrMissingRequiredField)
	mockStorage.AssertNotCalled(t, "SaveEntry")
}

func TestSaveEntry_MissingEntryDate(t *testing.T) {
	mockStorage := new(MockStorage)
	service := NewService(mockStorage)

	_, err := service.SaveEntry(context.Background(), storage.DailyEntry{JobNumber: "100"})

	assert.ErrorIs(t, err, billing.ErrMissingRequiredField)
	mockStorage.AssertNotCalled(t, "SaveEntry")
}

func TestSaveEntry_DropsZeroQuantityLines(t *testing.T) {
	mockStorage := new(MockStorage)
	service := NewService(mockStorage)

	entry := storage.DailyEntry{
		JobNumber: "100",
		EntryDate: "2024-06-01",
		Materials: []storage.MaterialLineItem{
			{MaterialName: "Rags", Category: "CONSUMABLES", Quantity: 0, UnitPrice: 5.00},
			{MaterialName: "Blue Painter's Tape", Category: "CONSUMABLES", Quantity: 2, UnitPrice: 11.86},
		},
		Labor: []storage.LaborLineItem{
			{RoleName: "Painter", RegularHours: 0, OvertimeHours: 0, StraightRate: 20.00},
		},
	}

	var saved storage.DailyEntry
	mockStorage.On("SaveEntry", mock.Anything, mock.MatchedBy(func(e storage.DailyEntry) bool {
		saved = e
		return true
	})).Return(int64(7), nil)

	id, err := service.SaveEntry(context.Background(), entry)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Len(t, saved.Materials, 1)
	assert.Equal(t, "Blue Painter's Tape", saved.Materials[0].MaterialName)
	assert.Empty(t, saved.Labor)
	mockStorage.AssertExpectations(t)
}

func TestSaveEntry_StorageError(t *testing.T) {
	mockStorage := new(MockStorage)
	service := NewService(mockStorage)

	dbErr := errors.New("connection refused")
	mockStorage.On("SaveEntry", mock.Anything, mock.Anything).Return(int64(0), dbErr)

	_, err := service.SaveEntry(context.Background(), storage.DailyEntry{
		JobNumber: "100", EntryDate: "2024-06-01",
	})

	assert.ErrorIs(t, err, dbErr)
}

func TestDayTotal_NilWhenAbsent(t *testing.T) {
	mockStorage := new(MockStorage)
	service := NewService(mockStorage)

	mockStorage.On("GetEntry", mock.Anything, "100", "2024-06-01").Return(nil, nil)

	total, err := service.DayTotal(context.Background(), "100", "2024-06-01")

	assert.NoError(t, err)
	assert.Nil(t, total)
}

func TestDayTotal_ComputesFromStoredEntry(t *testing.T) {
	mockStorage := new(MockStorage)
	service := NewService(mockStorage)

	entry := &storage.DailyEntry{
		JobNumber: "100",
		EntryDate: "2024-06-01",
		Materials: []storage.MaterialLineItem{
			{MaterialName: "Blue Painter's Tape", Category: "CONSUMABLES", Quantity: 10, UnitPrice: 2.50},
		},
	}
	mockStorage.On("GetEntry", mock.Anything, "100", "2024-06-01").Return(entry, nil)

	total, err := service.DayTotal(context.Background(), "100", "2024-06-01")

	assert.NoError(t, err)
	assert.NotNil(t, total)
	assert.InDelta(t, 25.00, total.GrandTotal, 1e-9)
	assert.Equal(t, 1, total.ItemCount)
}

func TestDayTotal_MissingKey(t *testing.T) {
	mockStorage := new(MockStorage)
	service := NewService(mockStorage)

	_, err := service.DayTotal(context.Background(), "", "2024-06-01")
	assert.ErrorIs(t, err, billing.ErrMissingRequiredField)

	_, err = service.DayTotal(context.Background(), "100", "")
	assert.ErrorIs(t, err, billing.ErrMissingRequiredField)
}

func TestFetchCatalogs(t *testing.T) {
	mockStorage := new(MockStorage)
	service := NewService(mockStorage)

	mockStorage.On("GetMaterials", mock.Anything).Return([]storage.Material{{ID: 1, Name: "Mek - 5 Gal"}}, nil)
	mockStorage.On("GetLaborRoles", mock.Anything).Return([]storage.LaborRole{{ID: 1, Name: "Painter"}}, nil)
	mockStorage.On("GetEquipmentRates", mock.Anything).Return([]storage.EquipmentRate{{ID: 1, Name: "Power Washer"}}, nil)
	mockStorage.On("GetEmployees", mock.Anything).Return([]storage.Employee{{ID: 1, Name: "Tim Mladek"}}, nil)

	cat, err := service.FetchCatalogs(context.Background())

	assert.NoError(t, err)
	assert.Len(t, cat.Materials, 1)
	assert.Len(t, cat.LaborRoles, 1)
	assert.Len(t, cat.EquipmentRates, 1)
	assert.Len(t, cat.Employees, 1)
	mockStorage.AssertExpectations(t)
}

func TestFetchCatalogs_PropagatesError(t *testing.T) {
	mockStorage := new(MockStorage)
	service := NewService(mockStorage)

	dbErr := errors.New("timeout")
	mockStorage.On("GetMaterials", mock.Anything).Return(nil, dbErr)
	mockStorage.On("GetLaborRoles", mock.Anything).Return([]storage.LaborRole{}, nil)
	mockStorage.On("GetEquipmentRates", mock.Anything).Return([]storage.EquipmentRate{}, nil)
	mockStorage.On("GetEmployees", mock.Anything).Return([]storage.Employee{}, nil)

	_, err := service.FetchCatalogs(context.Background())

	assert.ErrorIs(t, err, dbErr)
}

func TestSummaryReport_FiltersAndTotals(t *testing.T) {
	mockStorage := new(MockStorage)
	service := NewService(mockStorage)

	entries := []storage.DailyEntry{
		{JobNumber: "100", EntryDate: "2024-06-01", Materials: []storage.MaterialLineItem{
			{MaterialName: "Tape", Category: "CONSUMABLES", Quantity: 25, UnitPrice: 1.00},
		}},
		{JobNumber: "100", EntryDate: "2024-06-02", Materials: []storage.MaterialLineItem{
			{MaterialName: "Tape", Category: "CONSUMABLES", Quantity: 50, UnitPrice: 1.00},
		}},
	}
	mockStorage.On("GetEntries", mock.Anything, "100").Return(entries, nil)

	summary, err := service.SummaryReport(context.Background(), "100", "2024-06-02", "")

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.TotalDays)
	assert.InDelta(t, 50.00, summary.GrandTotal, 1e-9)
}
