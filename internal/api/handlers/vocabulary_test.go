package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"impact-explorer-backend/internal/mocks"
	"impact-explorer-backend/internal/service"
	"impact-explorer-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VocabularyHandlerTestSuite defines the test suite for VocabularyHandler
type VocabularyHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockVocabularyService *mocks.MockVocabularyServiceInterface
	handler               *VocabularyHandler
	httpSuite             *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *VocabularyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockVocabularyService = mocks.NewMockVocabularyServiceInterface(suite.ctrl)

	suite.handler = NewVocabularyHandler(suite.mockVocabularyService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/api/v1/lookups", suite.handler.GetLookups)
}

// TearDownTest cleans up after each test
func (suite *VocabularyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetLookups tests fetching the lookup vocabularies
func (suite *VocabularyHandlerTestSuite) TestGetLookups() {
	expected := &service.LookupsResponse{
		OrgTypes:          []string{"Nonprofit"},
		CauseAreas:        []string{"Education", "Health"},
		RoleTypes:         []string{"Operator"},
		Regions:           []string{"Global"},
		TargetPopulations: []string{"Women & Girls"},
		EmployeeRanges:    []string{"1-10", "500+"},
	}

	suite.mockVocabularyService.EXPECT().
		Lookups().
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/lookups", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.LookupsResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expected.CauseAreas, response.CauseAreas)
	assert.Equal(suite.T(), expected.EmployeeRanges, response.EmployeeRanges)
}

// TestGetLookupsServiceError tests the failure path
func (suite *VocabularyHandlerTestSuite) TestGetLookupsServiceError() {
	suite.mockVocabularyService.EXPECT().
		Lookups().
		Return(nil, fmt.Errorf("connection refused")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/lookups", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to get lookups")
}

// TestVocabularyHandlerTestSuite runs the test suite
func TestVocabularyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VocabularyHandlerTestSuite))
}
