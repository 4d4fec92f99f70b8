package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dsld/internal/chart"
	"dsld/internal/defender/models"
	"dsld/internal/defender/service/mocks"
	"dsld/internal/filter"
	"dsld/internal/views"
	dErrors "dsld/pkg/domain-errors"
	"dsld/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *mocks.MockStore
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.store = mocks.NewMockStore(ctrl)
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2021, 1, 3, 9, 0, 0, 0, time.UTC))

	svc, err := New(s.store, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TestNewRequiresStore() {
	_, err := New(nil)
	s.Error(err)
}

func (s *ServiceSuite) TestRoleOptionsPreselectDefaults() {
	s.store.EXPECT().Roles(gomock.Any()).Return([]string{"Defensor", "Promotor", "Responsable"}, nil)

	got := s.service.RoleOptions(s.ctx)
	s.Len(got.Options, 3)
	s.Equal([]string{"Defensor", "Responsable"}, got.Default)
	s.False(got.Degraded)
}

func (s *ServiceSuite) TestRoleOptionsDegrade() {
	s.store.EXPECT().Roles(gomock.Any()).Return(nil, errors.New("connection refused"))

	got := s.service.RoleOptions(s.ctx)
	s.True(got.Degraded)
	s.Empty(got.Options)
	s.Empty(got.Default)
}

func (s *ServiceSuite) TestSummaryPies() {
	f := models.Filter{Location: filter.Location{Department: "CUSCO"}}
	s.store.EXPECT().Summary(gomock.Any(), f).Return([]views.Group{
		{Location: "CUSCO", Categories: []string{"Defensor", "Abogado"}, Count: 2},
		{Location: "ACOMAYO", Categories: []string{"Responsable", "Abogado"}, Count: 1},
	}, nil)

	got := s.service.Summary(s.ctx, f)
	s.Equal(int64(3), got.Total)
	s.Equal("Número de Defensores por Provincia en CUSCO: 3", got.Bar.Title)
	s.Require().Len(got.Pies, 2)
	s.Equal(models.PieRole, got.Pies[0].Name)
	s.Equal("Distribución de Defensores por Cargo", got.Pies[0].Title)
	s.Equal("Distribución de Defensores por Ocupación", got.Pies[1].Title)
	s.Equal([]string{"Abogado"}, got.Pies[1].Labels)
}

func (s *ServiceSuite) TestSummaryNoData() {
	s.store.EXPECT().Summary(gomock.Any(), gomock.Any()).Return(nil, nil)

	got := s.service.Summary(s.ctx, models.Filter{})
	s.True(got.Bar.Empty)
	s.Equal(chart.NoDataLocation, got.Bar.Title)
	s.True(got.Pies[0].Empty)
	s.True(got.Pies[1].Empty)
}

func (s *ServiceSuite) TestTimelineCountsAppointments() {
	s.store.EXPECT().AppointmentDates(gomock.Any(), gomock.Any()).Return([]views.DateCount{
		{Raw: "2020-12-31", Count: 4},
		{Raw: "2021-01-02", Count: 1},
		{Raw: "sin fecha", Count: 9},
	}, nil)

	got, err := s.service.Timeline(s.ctx, models.Filter{}, "2021-01-01", "")
	s.Require().NoError(err)
	s.Equal("2021-01-03", got.To)
	s.Equal(models.TimelineTitle, got.Figure.Title)
	s.Equal([]float64{0, 1, 1}, got.Figure.Values)
}

func (s *ServiceSuite) TestSearchBlankIsValidationError() {
	_, err := s.service.Search(s.ctx, "   ")
	de, ok := dErrors.From(err)
	s.Require().True(ok)
	s.Equal(dErrors.CodeValidation, de.Code)
	s.Equal(models.EmptySearchMessage, de.Message)
}

func (s *ServiceSuite) TestSearchTrimsTerm() {
	s.store.EXPECT().Search(gomock.Any(), "quispe", models.SearchLimit).Return([]models.Match{
		{Defender: models.Defender{Surname: "Quispe"}},
	}, nil)

	got, err := s.service.Search(s.ctx, "  quispe ")
	s.Require().NoError(err)
	s.Len(got.Results, 1)
	s.Empty(got.Message)
}

func (s *ServiceSuite) TestSearchCollapsesInnerSpaces() {
	s.store.EXPECT().Search(gomock.Any(), "ana maria", models.SearchLimit).Return([]models.Match{}, nil)

	_, err := s.service.Search(s.ctx, "ana   maria")
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestSearchNoResults() {
	s.store.EXPECT().Search(gomock.Any(), "zzz", models.SearchLimit).Return([]models.Match{}, nil)

	got, err := s.service.Search(s.ctx, "zzz")
	s.Require().NoError(err)
	s.Equal(models.NoResultsMessage, got.Message)
	s.False(got.Degraded)
}

func (s *ServiceSuite) TestExportUnavailable() {
	s.store.EXPECT().ListAll(gomock.Any(), gomock.Any(), 50000).Return(nil, errors.New("timeout"))

	_, err := s.service.Export(s.ctx, models.Filter{})
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}
