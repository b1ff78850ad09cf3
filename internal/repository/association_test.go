package repository

import (
	"testing"

	"impact-explorer-backend/internal/database/models"
	"impact-explorer-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AssociationRepositoryTestSuite tests the AssociationRepository
type AssociationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssociationRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AssociationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAssociationRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssociationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssociationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssociationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssociationRepositoryTestSuite) createOrg() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.orgRepo.Create(org))
	return org
}

func (suite *AssociationRepositoryTestSuite) createCauseAreas(names ...string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		term := suite.factories.Vocabulary.CauseArea(name)
		suite.NoError(suite.baseTestSuite.DB.Create(term).Error)
		ids = append(ids, term.ID)
	}
	return ids
}

// TestReplaceCauseAreas tests the delete-then-insert set replacement
func (suite *AssociationRepositoryTestSuite) TestReplaceCauseAreas() {
	org := suite.createOrg()
	ids := suite.createCauseAreas("Education", "Health")

	suite.NoError(suite.repo.ReplaceCauseAreas(org.ID, ids))

	retrieved, err := suite.orgRepo.GetByID(org.ID)
	suite.NoError(err)
	suite.Len(retrieved.CauseAreas, 2)
}

// TestReplaceOverwritesExistingSet tests that replacement never merges
func (suite *AssociationRepositoryTestSuite) TestReplaceOverwritesExistingSet() {
	org := suite.createOrg()
	ids := suite.createCauseAreas("Education", "Health", "Climate")

	suite.NoError(suite.repo.ReplaceCauseAreas(org.ID, ids[:2]))
	suite.NoError(suite.repo.ReplaceCauseAreas(org.ID, ids[2:]))

	retrieved, err := suite.orgRepo.GetByID(org.ID)
	suite.NoError(err)
	suite.Len(retrieved.CauseAreas, 1)
	suite.Equal("Climate", retrieved.CauseAreas[0].Name)
}

// TestReplaceWithEmptySetClears tests that an empty id list empties the category
func (suite *AssociationRepositoryTestSuite) TestReplaceWithEmptySetClears() {
	org := suite.createOrg()
	ids := suite.createCauseAreas("Education")

	suite.NoError(suite.repo.ReplaceCauseAreas(org.ID, ids))
	suite.NoError(suite.repo.ReplaceCauseAreas(org.ID, nil))

	count, err := suite.repo.CountForOrganization(org.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestReplaceIsIdempotent tests repeating the same replacement
func (suite *AssociationRepositoryTestSuite) TestReplaceIsIdempotent() {
	org := suite.createOrg()
	ids := suite.createCauseAreas("Education")

	suite.NoError(suite.repo.ReplaceCauseAreas(org.ID, ids))
	suite.NoError(suite.repo.ReplaceCauseAreas(org.ID, ids))

	count, err := suite.repo.CountForOrganization(org.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestReplacementsAreIndependentPerCategory tests that each junction table
// is owned separately
func (suite *AssociationRepositoryTestSuite) TestReplacementsAreIndependentPerCategory() {
	org := suite.createOrg()
	causeIDs := suite.createCauseAreas("Education")

	region := suite.factories.Vocabulary.Region("Global")
	suite.NoError(suite.baseTestSuite.DB.Create(region).Error)
	roleType := suite.factories.Vocabulary.RoleType("Operator")
	suite.NoError(suite.baseTestSuite.DB.Create(roleType).Error)
	population := suite.factories.Vocabulary.TargetPopulation("Women & Girls")
	suite.NoError(suite.baseTestSuite.DB.Create(population).Error)

	suite.NoError(suite.repo.ReplaceCauseAreas(org.ID, causeIDs))
	suite.NoError(suite.repo.ReplaceRegions(org.ID, []uuid.UUID{region.ID}))
	suite.NoError(suite.repo.ReplaceRoleTypes(org.ID, []uuid.UUID{roleType.ID}))
	suite.NoError(suite.repo.ReplaceTargetPopulations(org.ID, []uuid.UUID{population.ID}))

	count, err := suite.repo.CountForOrganization(org.ID)
	suite.NoError(err)
	suite.Equal(int64(4), count)

	// Clearing one category leaves the others untouched
	suite.NoError(suite.repo.ReplaceRegions(org.ID, nil))

	count, err = suite.repo.CountForOrganization(org.ID)
	suite.NoError(err)
	suite.Equal(int64(3), count)
}

// TestAssociationRepositoryTestSuite runs the test suite
func TestAssociationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssociationRepositoryTestSuite))
}
