package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"company-portal-backend/internal/api/handlers"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/mocks"
	"company-portal-backend/internal/service"
	"company-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CompanyHandlerTestSuite defines the test suite for CompanyHandler
type CompanyHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCompanySv *mocks.MockCompanyServiceInterface
	handler       *handlers.CompanyHandler
	http          *testutils.HTTPTestSuite
}

func (suite *CompanyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompanySv = mocks.NewMockCompanyServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCompanyHandler(suite.mockCompanySv)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/api/company", suite.handler.ListCompanies)
	suite.http.Router.POST("/api/company", suite.handler.CreateCompany)
	suite.http.Router.GET("/api/company/:id", suite.handler.GetCompany)
	suite.http.Router.PUT("/api/company/:id", suite.handler.UpdateCompany)
	suite.http.Router.DELETE("/api/company/:id", suite.handler.DeleteCompany)
}

func (suite *CompanyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyHandlerTestSuite) companyForm(method, url string, fields map[string]string, withLogo bool) *httptest.ResponseRecorder {
	var logo []byte
	if withLogo {
		logo = []byte("image-bytes")
	}
	return suite.http.MakeMultipartRequest(suite.T(), method, url, fields, "logo", "logo.png", logo, nil)
}

func (suite *CompanyHandlerTestSuite) TestListCompanies_Success() {
	suite.mockCompanySv.EXPECT().List().Return([]service.CompanyResponse{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Bravo"},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/company", nil)

	var body struct {
		Message string                    `json:"message"`
		Data    []service.CompanyResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), "Showing all companies", body.Message)
	assert.Len(suite.T(), body.Data, 2)
}

func (suite *CompanyHandlerTestSuite) TestCreateCompany_Success() {
	suite.mockCompanySv.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateCompanyRequest) (*service.CompanyResponse, error) {
			assert.Equal(suite.T(), "Acme", req.Name)
			assert.Equal(suite.T(), "info@acme.test", req.Email)
			assert.Equal(suite.T(), "https://acme.test", req.Website)
			assert.NotNil(suite.T(), req.Logo)
			return &service.CompanyResponse{ID: 1, Name: "Acme", Logo: "logos/abc.png"}, nil
		})

	w := suite.companyForm(http.MethodPost, "/api/company", map[string]string{
		"name":    "Acme",
		"email":   "info@acme.test",
		"website": "https://acme.test",
	}, true)

	testutils.AssertMessageResponse(suite.T(), w, http.StatusCreated, "Company has been added")
}

func (suite *CompanyHandlerTestSuite) TestCreateCompany_ValidationError() {
	suite.mockCompanySv.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError(map[string][]string{
			"logo": {"The logo field is required."},
		}))

	w := suite.companyForm(http.MethodPost, "/api/company", map[string]string{
		"name":    "Acme",
		"email":   "info@acme.test",
		"website": "https://acme.test",
	}, false)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var body map[string]map[string][]string
	testutils.ParseJSONResponse(suite.T(), w, &body)
	assert.Equal(suite.T(), []string{"The logo field is required."}, body["error"]["logo"])
}

func (suite *CompanyHandlerTestSuite) TestCreateCompany_ConstraintViolation() {
	suite.mockCompanySv.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewPersistenceError(errors.New("duplicate key value violates unique constraint")))

	w := suite.companyForm(http.MethodPost, "/api/company", map[string]string{
		"name":    "Acme",
		"email":   "info@acme.test",
		"website": "https://acme.test",
	}, true)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)

	var body map[string]string
	testutils.ParseJSONResponse(suite.T(), w, &body)
	assert.Contains(suite.T(), body["error"], "duplicate key value")
}

func (suite *CompanyHandlerTestSuite) TestGetCompany_Success() {
	suite.mockCompanySv.EXPECT().GetByID(uint(5)).Return(&service.CompanyResponse{ID: 5, Name: "Acme"}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/company/5", nil)

	testutils.AssertMessageResponse(suite.T(), w, http.StatusOK, "Showing company profiles")
}

func (suite *CompanyHandlerTestSuite) TestGetCompany_NotFound() {
	suite.mockCompanySv.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrCompanyNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/api/company/99", nil)

	testutils.AssertMessageResponse(suite.T(), w, http.StatusNotFound, "The data provided was not found")
}

// A non-numeric id never reaches the service; the handler maps it to the same
// 404 body as a missing row.
func (suite *CompanyHandlerTestSuite) TestGetCompany_NonNumericID() {
	ctx, w := testutils.CreateTestGinContext()
	testutils.SetURLParam(ctx, "id", "abc")
	suite.handler.GetCompany(ctx)

	testutils.AssertMessageResponse(suite.T(), w, http.StatusNotFound, "The data provided was not found")
}

func (suite *CompanyHandlerTestSuite) TestUpdateCompany_Success() {
	suite.mockCompanySv.EXPECT().
		Update(gomock.Any(), uint(5), gomock.Any()).
		Return(&service.CompanyResponse{ID: 5, Name: "Renamed"}, nil)

	w := suite.companyForm(http.MethodPut, "/api/company/5", map[string]string{
		"name":    "Renamed",
		"email":   "info@acme.test",
		"website": "https://acme.test",
	}, false)

	testutils.AssertMessageResponse(suite.T(), w, http.StatusOK, "Company's data has been updated")
}

func (suite *CompanyHandlerTestSuite) TestDeleteCompany_Gone() {
	suite.mockCompanySv.EXPECT().Delete(gomock.Any(), uint(5)).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/api/company/5", nil)

	testutils.AssertMessageResponse(suite.T(), w, http.StatusGone, "Comapny's data has been deleted")
}

func (suite *CompanyHandlerTestSuite) TestDeleteCompany_NotFound() {
	suite.mockCompanySv.EXPECT().Delete(gomock.Any(), uint(99)).Return(apperrors.ErrCompanyNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/api/company/99", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestCompanyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}
