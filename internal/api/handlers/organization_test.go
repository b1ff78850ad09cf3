package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"impact-explorer-backend/internal/database/models"
	apperrors "impact-explorer-backend/internal/errors"
	"impact-explorer-backend/internal/mocks"
	"impact-explorer-backend/internal/service"
	"impact-explorer-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.POST("/filter", suite.handler.FilterOrganizations)
		orgs.POST("/export", suite.handler.ExportOrganizations)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.PUT("/:id", suite.handler.UpdateOrganization)
		orgs.DELETE("/:id", suite.handler.DeleteOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListOrganizations tests listing organizations
func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	flats := []models.FlatOrganization{
		testutils.NewFlatOrganizationFactory().Create(),
		testutils.NewFlatOrganizationFactory().Create(),
	}

	suite.mockOrganizationService.EXPECT().
		List().
		Return(flats, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []models.FlatOrganization
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestGetOrganization tests getting an organization by ID
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	flat := testutils.NewFlatOrganizationFactory().Create()

	suite.mockOrganizationService.EXPECT().
		Get(flat.ID).
		Return(&flat, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/organizations/%s", flat.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response models.FlatOrganization
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), flat.ID, response.ID)
	assert.Equal(suite.T(), flat.Name, response.Name)
}

// TestGetOrganizationInvalidID tests getting an organization with invalid ID
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/invalid-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid UUID")
}

// TestGetOrganizationNotFound tests getting a non-existent organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Get(orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/organizations/%s", orgID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":        "Acumen",
		"org_type":    "Impact Investing / Foundation",
		"cause_areas": []string{"Poverty Alleviation"},
	}

	expectedResult := &service.WriteResult{
		ID:          orgID,
		BaseWriteOK: true,
		Associations: map[string]service.AssociationOutcome{
			models.KeyCauseAreas:        {OK: true},
			models.KeyRoleTypes:         {OK: true},
			models.KeyRegions:           {OK: true},
			models.KeyTargetPopulations: {OK: true},
		},
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResult, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.WriteResult
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), orgID, response.ID)
	assert.True(suite.T(), response.BaseWriteOK)
}

// TestCreateOrganizationPartialWrite tests that a partial write still returns 201
// with the per-category outcomes
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationPartialWrite() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":        "Partial Org",
		"cause_areas": []string{"Education"},
	}

	partialResult := &service.WriteResult{
		ID:          orgID,
		BaseWriteOK: true,
		Associations: map[string]service.AssociationOutcome{
			models.KeyCauseAreas:        {Error: "insert failed"},
			models.KeyRoleTypes:         {OK: true},
			models.KeyRegions:           {OK: true},
			models.KeyTargetPopulations: {OK: true},
		},
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		Return(partialResult, &apperrors.PartialWriteError{Categories: []string{models.KeyCauseAreas}}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.WriteResult
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.BaseWriteOK)
	assert.False(suite.T(), response.Associations[models.KeyCauseAreas].OK)
}

// TestCreateOrganizationValidationError tests creating with invalid data
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationValidationError() {
	requestBody := map[string]interface{}{
		"name": "",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		Return(nil, fmt.Errorf("validation failed: name is required")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Failed to create organization")
}

// TestCreateOrganizationBaseWriteError tests that a base-row failure maps to 500
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationBaseWriteError() {
	requestBody := map[string]interface{}{"name": "Doomed Org"}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		Return(&service.WriteResult{BaseWriteOK: false}, fmt.Errorf("failed to create organization: connection refused")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to create organization")
}

// TestUpdateOrganization tests updating an organization
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name": "Renamed Org",
	}

	expectedResult := &service.WriteResult{
		ID:          orgID,
		BaseWriteOK: true,
		Associations: map[string]service.AssociationOutcome{
			models.KeyCauseAreas:        {OK: true},
			models.KeyRoleTypes:         {OK: true},
			models.KeyRegions:           {OK: true},
			models.KeyTargetPopulations: {OK: true},
		},
	}

	suite.mockOrganizationService.EXPECT().
		Update(orgID, gomock.Any()).
		Return(expectedResult, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/organizations/%s", orgID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.WriteResult
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), orgID, response.ID)
}

// TestUpdateOrganizationInvalidID tests updating with a malformed id
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/not-a-uuid", map[string]interface{}{"name": "x"})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid UUID")
}

// TestDeleteOrganization tests deleting an organization
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Delete(orgID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/organizations/%s", orgID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestFilterOrganizations tests the filter endpoint
func (suite *OrganizationHandlerTestSuite) TestFilterOrganizations() {
	matching := testutils.NewFlatOrganizationFactory().Create()
	matching.Name = "Education Org"
	other := testutils.NewFlatOrganizationFactory().Create()
	other.Name = "Health Org"
	other.CauseAreas = []string{"Health"}

	suite.mockOrganizationService.EXPECT().
		List().
		Return([]models.FlatOrganization{matching, other}, nil).
		Times(1)

	requestBody := map[string]interface{}{
		"categories": map[string][]string{
			models.KeyCauseAreas: {"Education"},
		},
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/filter", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []models.FlatOrganization
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Education Org", response[0].Name)
}

// TestFilterOrganizationsEmptyCriteria tests that empty criteria return everything
func (suite *OrganizationHandlerTestSuite) TestFilterOrganizationsEmptyCriteria() {
	flats := []models.FlatOrganization{
		testutils.NewFlatOrganizationFactory().Create(),
		testutils.NewFlatOrganizationFactory().Create(),
	}

	suite.mockOrganizationService.EXPECT().
		List().
		Return(flats, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/filter", map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []models.FlatOrganization
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestExportOrganizations tests the CSV export endpoint
func (suite *OrganizationHandlerTestSuite) TestExportOrganizations() {
	savedID := uuid.New()
	csv := "\"Name\",\"Type\",\"Cause Areas\",\"Hiring Status\",\"Website\"\n\"Acumen\",\"\",\"\",\"\",\"\""

	suite.mockOrganizationService.EXPECT().
		ExportCSV([]uuid.UUID{savedID}).
		Return(csv, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/export", map[string]interface{}{
		"ids": []string{savedID.String()},
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "text/csv", recorder.Header().Get("Content-Type"))
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "saved_orgs.csv")
	assert.Equal(suite.T(), csv, recorder.Body.String())
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
