package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/internal/mock"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// ── categories ──────────────────────────────────────────────────────────────

func TestCategories_FilterCyclesTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientCategoryService(ctrl)
	m := NewCategoriesModel(context.Background(), svc)

	gomock.InOrder(
		svc.EXPECT().List(gomock.Any()).Return(testCategories, nil),
		svc.EXPECT().ListByType(gomock.Any(), models.Expense).Return([]models.Category{testCategories[0]}, nil),
		svc.EXPECT().ListByType(gomock.Any(), models.Income).Return([]models.Category{testCategories[1]}, nil),
		svc.EXPECT().List(gomock.Any()).Return(testCategories, nil),
	)

	deliver(t, m, m.Init())
	assert.Len(t, m.items, 3)
	assert.Contains(t, m.View(), "Showing: all")

	_, cmd := m.Update(press("f"))
	deliver(t, m, cmd)
	assert.Equal(t, []models.Category{testCategories[0]}, m.items)
	assert.Contains(t, m.View(), "Showing: expense")

	_, cmd = m.Update(press("f"))
	deliver(t, m, cmd)
	assert.Equal(t, []models.Category{testCategories[1]}, m.items)

	_, cmd = m.Update(press("f"))
	deliver(t, m, cmd)
	assert.Len(t, m.items, 3)
}

func TestCategories_CreateAndRename(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientCategoryService(ctrl)
	m := NewCategoriesModel(context.Background(), svc)
	m.items = testCategories

	m.Update(press("n"))
	require.Equal(t, modeForm, m.mode)
	m.form.setValue(catFieldName, "Travel")

	svc.EXPECT().Save(gomock.Any(), models.Category{Name: "Travel", Type: models.Expense}).Return(nil)
	_, cmd := m.Update(press("enter"))
	saved, ok := find[savedMsg](collect(t, cmd))
	require.True(t, ok)

	svc.EXPECT().List(gomock.Any()).Return(testCategories, nil)
	_, cmd = m.Update(saved)
	deliver(t, m, cmd)
	assert.Equal(t, modeList, m.mode)

	m.idx = 1
	m.Update(press("e"))
	assert.Equal(t, models.ID("c2"), m.editing)
	assert.Equal(t, string(models.Income), m.form.choiceValue(catFieldType))
	assert.Equal(t, "Salary", m.form.value(catFieldName))
}

func TestCategories_DeleteFailureShowsFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientCategoryService(ctrl)
	m := NewCategoriesModel(context.Background(), svc)
	m.items = testCategories

	m.Update(press("d"))
	require.Equal(t, modeConfirm, m.mode)

	svc.EXPECT().Delete(gomock.Any(), models.ID("c1")).Return(errors.New("boom"))
	_, cmd := m.Update(press("y"))
	deliver(t, m, cmd)

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, app.FallbackDeleteCategory, m.line.errMsg)
}

// ── accounts ────────────────────────────────────────────────────────────────

func TestAccounts_ListShowsTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	m := NewAccountsModel(context.Background(), svc)

	svc.EXPECT().List(gomock.Any()).Return([]models.Account{
		{ID: "a1", Name: "Main", Balance: 10050},
		{ID: "a2", Name: "Cash", Balance: 2000},
	}, nil)
	deliver(t, m, m.Init())

	view := m.View()
	assert.Contains(t, view, "Main")
	assert.Contains(t, view, "120.50")
}

func TestAccounts_InvalidBalance(t *testing.T) {
	m := NewAccountsModel(context.Background(), nil)

	m.Update(press("n"))
	m.form.setValue(accFieldName, "Main")
	m.form.setValue(accFieldBalance, "lots")

	_, cmd := m.Update(press("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, errInvalidBalanceInput.Error(), m.line.errMsg)
	assert.Equal(t, modeForm, m.mode)
}

func TestAccounts_EditKeepsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	m := NewAccountsModel(context.Background(), svc)
	m.items = []models.Account{{ID: "a1", Name: "Main", Balance: 500}}

	m.Update(press("e"))
	m.form.setValue(accFieldName, "Checking")

	svc.EXPECT().Save(gomock.Any(), models.Account{ID: "a1", Name: "Checking", Balance: 500}).Return(nil)
	_, cmd := m.Update(press("enter"))
	_, ok := find[savedMsg](collect(t, cmd))
	assert.True(t, ok)
}

func TestAccounts_EscGoesHome(t *testing.T) {
	m := NewAccountsModel(context.Background(), nil)

	_, cmd := m.Update(press("esc"))
	nav, ok := find[NavigateTo](collect(t, cmd))
	require.True(t, ok)
	assert.Equal(t, guard.PathHome, nav.Path)
}

// ── dashboard ───────────────────────────────────────────────────────────────

func TestDashboard_ShowsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientDashboardService(ctrl)
	m := NewDashboardModel(context.Background(), svc, "")
	assert.Equal(t, DefaultChartPath, m.chartPath)

	svc.EXPECT().Summary(gomock.Any()).Return(models.DashboardSummary{
		TotalBalance: 230000,
		Income:       100000,
		Expense:      7500,
		ExpenseByCategory: []models.CategoryTotal{
			{Category: models.Category{Name: "Food"}, Total: 7500},
		},
	}, nil)
	deliver(t, m, m.Init())

	view := m.View()
	assert.Contains(t, view, "2300.00")
	assert.Contains(t, view, "Food")
	assert.Contains(t, view, "Recent transactions")
}

func TestDashboard_ExportChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientDashboardService(ctrl)
	path := filepath.Join(t.TempDir(), "chart.png")
	m := NewDashboardModel(context.Background(), svc, path)
	m.loaded = true

	svc.EXPECT().RenderBalanceChart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ models.DashboardSummary, w io.Writer) error {
			_, err := w.Write([]byte("png"))
			return err
		})

	_, cmd := m.Update(press("x"))
	deliver(t, m, cmd)

	assert.Equal(t, "Chart saved to "+path, m.line.status)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
}

func TestDashboard_ExportNotEnoughData(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientDashboardService(ctrl)
	path := filepath.Join(t.TempDir(), "chart.png")
	m := NewDashboardModel(context.Background(), svc, path)
	m.loaded = true

	svc.EXPECT().RenderBalanceChart(gomock.Any(), gomock.Any()).Return(service.ErrNotEnoughData)

	_, cmd := m.Update(press("x"))
	deliver(t, m, cmd)

	assert.Equal(t, service.ErrNotEnoughData.Error(), m.line.errMsg)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "a failed export leaves no file")
}

func TestDashboard_ExportBeforeLoadIsIgnored(t *testing.T) {
	m := NewDashboardModel(context.Background(), nil, "")

	_, cmd := m.Update(press("x"))
	assert.Nil(t, cmd)
}

func TestDashboard_ClipboardUnavailable(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard utility") })

	m := NewDashboardModel(context.Background(), nil, "")
	m.loaded = true

	_, cmd := m.Update(press("c"))
	deliver(t, m, cmd)

	assert.Equal(t, app.FallbackClipboardUnavailable, m.line.errMsg)
}
