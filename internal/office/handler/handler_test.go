package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dsld/internal/chart"
	locationModels "dsld/internal/location/models"
	"dsld/internal/office/handler/mocks"
	"dsld/internal/office/models"
	"dsld/internal/views"
	"dsld/pkg/domain"
	dErrors "dsld/pkg/domain-errors"
	"dsld/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type OfficeHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestOfficeHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfficeHandlerSuite))
}

func (s *OfficeHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.service = mocks.NewMockService(ctrl)

	h := New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	s.router = chi.NewRouter()
	h.Register(s.router)
	h.RegisterLookups(s.router)
}

func (s *OfficeHandlerSuite) TestStates() {
	s.service.EXPECT().StateOptions(gomock.Any()).Return(locationModels.OptionList{
		Options: locationModels.OptionsFromNames([]string{"Acreditada"}),
	})

	rr := testutil.DoRequest(s.router, testutil.Get(s.T(), "/offices/states"))
	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[locationModels.OptionList](s.T(), rr)
	s.Equal("Acreditada", resp.Options[0].Value)
}

func (s *OfficeHandlerSuite) TestSummaryFilters() {
	s.service.EXPECT().Summary(gomock.Any(), models.Filter{States: []string{"Acreditada"}}).Return(views.Summary{})

	rr := testutil.DoRequest(s.router, testutil.Get(s.T(), "/offices/summary?states=Acreditada"))
	testutil.AssertStatusOK(s.T(), rr)
}

func (s *OfficeHandlerSuite) TestUnknownChart() {
	s.service.EXPECT().Summary(gomock.Any(), gomock.Any()).Return(views.Summary{
		Bar: chart.Placeholder(chart.KindBar, chart.NoDataLocation),
	})

	rr := testutil.DoRequest(s.router, testutil.Get(s.T(), "/offices/charts/course.svg"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func (s *OfficeHandlerSuite) TestStatePieAsSVG() {
	s.service.EXPECT().Summary(gomock.Any(), gomock.Any()).Return(views.Summary{
		Pies: []views.Pie{views.PieChart(models.PieState, "Distribución", chart.NoDataCategory,
			[]chart.Count{{Label: "Acreditada", Value: 3}, {Label: "No acreditada", Value: 1}})},
	})

	rr := testutil.DoRequest(s.router, testutil.Get(s.T(), "/offices/charts/state.svg"))
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertContentType(s.T(), rr, "image/svg+xml")
}

func (s *OfficeHandlerSuite) TestLookup() {
	s.service.EXPECT().Lookup(gomock.Any(), "1234").
		Return(views.Lookup[models.Record]{}, dErrors.New(dErrors.CodeValidation, domain.OfficeCodeFormatMessage))

	rr := testutil.DoRequest(s.router, testutil.Get(s.T(), "/offices/lookup?code=1234"))
	testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	testutil.AssertErrorDescription(s.T(), rr, "validation_error", domain.OfficeCodeFormatMessage)
}

func (s *OfficeHandlerSuite) TestLookupFound() {
	s.service.EXPECT().Lookup(gomock.Any(), "01234").Return(views.NewLookup([]models.Record{
		models.Office{Code: "01234", Model: "Municipal"}.Record(),
	}, models.NoResultsMessage), nil)

	rr := testutil.DoRequest(s.router, testutil.Get(s.T(), "/offices/lookup?code=01234"))
	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[views.Lookup[models.Record]](s.T(), rr)
	s.Require().Len(resp.Results, 1)
	s.Equal("Municipal", resp.Results[0].Fields[0].Value)
	s.Empty(resp.Message)
}
