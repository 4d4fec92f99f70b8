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
	"dsld/internal/committee/models"
	"dsld/internal/committee/service/mocks"
	"dsld/internal/filter"
	"dsld/internal/query"
	"dsld/internal/validity"
	"dsld/pkg/domain"
	dErrors "dsld/pkg/domain-errors"
	"dsld/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,LocationNamer

type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	store     *mocks.MockStore
	locations *mocks.MockLocationNamer
	service   *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.store = mocks.NewMockStore(ctrl)
	s.locations = mocks.NewMockLocationNamer(ctrl)
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2021, 6, 1, 15, 0, 0, 0, time.UTC))

	svc, err := New(s.store, s.locations, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) committees() []models.Committee {
	return []models.Committee{
		{Name: "Regional", Type: models.TypeRegional, Region: "Lima Provincia",
			OrdinanceDate: "15/03/2019", StartDate: "2019", Creation: models.Created},
		{Name: "Huaral", Type: models.TypeProvincial, Region: "Lima Provincia", Province: "HUARAL",
			OrdinanceDate: "2020-01-10", StartDate: "2020-02-01", EndDate: "2021-01-31", Creation: models.Created},
		{Name: "Barranca", Type: models.TypeProvincial, Region: "Lima Provincia", Province: "BARRANCA",
			Creation: models.NotCreated},
	}
}

func (s *ServiceSuite) TestNewRequiresCollaborators() {
	_, err := New(nil, s.locations)
	s.Error(err)
	_, err = New(s.store, nil)
	s.Error(err)
}

func (s *ServiceSuite) TestSummaryResolvesSyntheticDepartment() {
	codes := filter.Location{Department: "260000"}
	names := filter.Location{Department: "Lima Provincia"}
	s.locations.EXPECT().Names(gomock.Any(), codes).Return(names, nil)
	s.store.EXPECT().List(gomock.Any(), models.Criteria{Location: names}, 50000).Return(s.committees(), nil)

	got := s.service.Summary(s.ctx, models.Filter{Location: codes})
	s.Equal(int64(3), got.Total)
	s.Equal("Número de CCONNA por Provincia en Lima Provincia: 3", got.Bar.Title)
	s.Equal([]string{"BARRANCA", "HUARAL", chart.UnknownLabel}, got.Bar.Labels)
	s.Require().Len(got.Pies, 3)
	s.Equal(models.TypeTitle, got.Pies[0].Title)
	s.Equal([]string{models.TypeProvincial, models.TypeRegional}, got.Pies[0].Labels)
	s.Equal([]string{models.Created, models.NotCreated}, got.Pies[1].Labels)
	s.Equal([]string{string(validity.NotActive), string(validity.Active)}, got.Pies[2].Labels)
}

func (s *ServiceSuite) TestNotRegisteredRunsNoQuery() {
	s.locations.EXPECT().Names(gomock.Any(), filter.Location{}).Return(filter.Location{}, nil)

	got := s.service.Summary(s.ctx, models.Filter{Registration: models.NotRegistered})
	s.Zero(got.Total)
	s.True(got.Bar.Empty)
	s.Equal(chart.NoDataLocation, got.Bar.Title)
	s.Equal(chart.NoDataType, got.Pies[0].Title)
	s.Equal(chart.NoDataCreation, got.Pies[1].Title)
	s.Equal(chart.NoDataValidity, got.Pies[2].Title)
}

func (s *ServiceSuite) TestCreationBecomesCriterion() {
	s.locations.EXPECT().Names(gomock.Any(), gomock.Any()).Return(filter.Location{}, nil)
	created := false
	s.store.EXPECT().List(gomock.Any(), models.Criteria{Created: &created}, 50000).Return(nil, nil)

	got := s.service.Table(s.ctx, models.Filter{Creation: models.NoCreada}, query.Page{Number: 1, Size: 10})
	s.Empty(got.Rows)
	s.False(got.Degraded)
}

func (s *ServiceSuite) TestTablePagesAfterOperationFilter() {
	s.locations.EXPECT().Names(gomock.Any(), gomock.Any()).Return(filter.Location{}, nil)
	s.store.EXPECT().List(gomock.Any(), gomock.Any(), 50000).Return(s.committees(), nil)

	got := s.service.Table(s.ctx, models.Filter{Operation: models.Operativa}, query.Page{Number: 1, Size: 10})
	s.Equal(1, got.Total)
	s.Require().Len(got.Rows, 1)
	s.Equal("Regional", got.Rows[0].Name)
	s.Equal(validity.Active, got.Rows[0].Validity)
}

func (s *ServiceSuite) TestTableDegrades() {
	s.locations.EXPECT().Names(gomock.Any(), gomock.Any()).Return(filter.Location{}, nil)
	s.store.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	got := s.service.Table(s.ctx, models.Filter{}, query.Page{Number: 3, Size: 10})
	s.True(got.Degraded)
	s.Equal(3, got.Page)
}

func (s *ServiceSuite) TestHistoryCountsOrdinances() {
	s.locations.EXPECT().Names(gomock.Any(), gomock.Any()).Return(filter.Location{}, nil)
	s.store.EXPECT().List(gomock.Any(), gomock.Any(), 50000).Return(s.committees(), nil)

	got, err := s.service.History(s.ctx, models.Filter{}, "2020-01-09", "2020-01-11")
	s.Require().NoError(err)
	s.Equal(models.HistoryTitle, got.Figure.Title)
	s.Equal([]float64{0, 1, 1}, got.Figure.Values)
}

func (s *ServiceSuite) TestTypeOptionsUseDepth() {
	codes := filter.Location{Department: "080000", Province: "080100"}
	names := filter.Location{Department: "CUSCO", Province: "CUSCO"}
	s.locations.EXPECT().Names(gomock.Any(), codes).Return(names, nil)
	s.store.EXPECT().Types(gomock.Any(), names, []string{models.TypeProvincial, models.TypeDistrital}).
		Return([]string{models.TypeDistrital}, nil)

	got := s.service.TypeOptions(s.ctx, codes)
	s.Require().Len(got.Options, 1)
	s.Equal(models.TypeDistrital, got.Options[0].Value)
}

func (s *ServiceSuite) TestSummaryDegradesWhenNamesFail() {
	codes := filter.Location{Department: "080000"}
	s.locations.EXPECT().Names(gomock.Any(), codes).Return(filter.Location{}, errors.New("location store down"))

	got := s.service.Summary(s.ctx, models.Filter{Location: codes})
	s.True(got.Degraded)
	s.Zero(got.Total)
	s.True(got.Bar.Empty)
}

func (s *ServiceSuite) TestTableDegradesWhenNamesFail() {
	s.locations.EXPECT().Names(gomock.Any(), gomock.Any()).Return(filter.Location{}, errors.New("location store down"))

	got := s.service.Table(s.ctx, models.Filter{Location: filter.Location{Department: "080000"}}, query.Page{Number: 1, Size: 10})
	s.True(got.Degraded)
	s.Empty(got.Rows)
}

func (s *ServiceSuite) TestTypeOptionsDegradeWhenNamesFail() {
	codes := filter.Location{Department: "080000"}
	gomock.InOrder(
		s.locations.EXPECT().Names(gomock.Any(), codes).Return(filter.Location{}, errors.New("location store down")),
		s.locations.EXPECT().Names(gomock.Any(), codes).Return(filter.Location{Department: "CUSCO"}, nil),
	)
	s.store.EXPECT().Types(gomock.Any(), filter.Location{Department: "CUSCO"}, gomock.Any()).
		Return([]string{models.TypeRegional}, nil)

	got := s.service.TypeOptions(s.ctx, codes)
	s.True(got.Degraded)
	s.Empty(got.Options)

	got = s.service.TypeOptions(s.ctx, codes)
	s.False(got.Degraded)
	s.Len(got.Options, 1)
}

func (s *ServiceSuite) TestLookupRejectsMalformedUbigeo() {
	_, err := s.service.Lookup(s.ctx, "15010")
	de, ok := dErrors.From(err)
	s.Require().True(ok)
	s.Equal(dErrors.CodeValidation, de.Code)
	s.Equal(domain.UbigeoFormatMessage, de.Message)
}

func (s *ServiceSuite) TestLookupDerivesValidity() {
	s.store.EXPECT().ByUbigeo(gomock.Any(), "080108").Return([]models.Committee{
		{Name: "Wanchaq", StartDate: "2020-02-01", EndDate: "2022-02-01"},
	}, nil)

	got, err := s.service.Lookup(s.ctx, " 080108 ")
	s.Require().NoError(err)
	s.Require().Len(got.Results, 1)
	s.Equal(validity.Active, got.Results[0].Validity)
}

func (s *ServiceSuite) TestLookupEmpty() {
	s.store.EXPECT().ByUbigeo(gomock.Any(), "999999").Return([]models.Committee{}, nil)

	got, err := s.service.Lookup(s.ctx, "999999")
	s.Require().NoError(err)
	s.Equal(models.NoResultsMessage, got.Message)
}
