package repository

import (
	"testing"

	"impact-explorer-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// VocabularyRepositoryTestSuite tests the VocabularyRepository
type VocabularyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *VocabularyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *VocabularyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewVocabularyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *VocabularyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *VocabularyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *VocabularyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestResolveOrgTypeID tests the single-valued resolution policy
func (suite *VocabularyRepositoryTestSuite) TestResolveOrgTypeID() {
	orgType := suite.factories.Vocabulary.OrgType("Nonprofit")
	suite.NoError(suite.baseTestSuite.DB.Create(orgType).Error)

	id, err := suite.repo.ResolveOrgTypeID("Nonprofit")

	suite.NoError(err)
	suite.NotNil(id)
	suite.Equal(orgType.ID, *id)
}

// TestResolveOrgTypeIDUnknownIsNil tests that a vocabulary miss yields nil, not an error
func (suite *VocabularyRepositoryTestSuite) TestResolveOrgTypeIDUnknownIsNil() {
	id, err := suite.repo.ResolveOrgTypeID("No Such Type")

	suite.NoError(err)
	suite.Nil(id)
}

// TestResolveOrgTypeIDEmptyIsNil tests that empty input yields nil
func (suite *VocabularyRepositoryTestSuite) TestResolveOrgTypeIDEmptyIsNil() {
	id, err := suite.repo.ResolveOrgTypeID("")

	suite.NoError(err)
	suite.Nil(id)
}

// TestResolveEmployeeRangeID tests label-keyed resolution
func (suite *VocabularyRepositoryTestSuite) TestResolveEmployeeRangeID() {
	rng := suite.factories.Vocabulary.EmployeeRange("11-50", 2)
	suite.NoError(suite.baseTestSuite.DB.Create(rng).Error)

	id, err := suite.repo.ResolveEmployeeRangeID("11-50")

	suite.NoError(err)
	suite.NotNil(id)
	suite.Equal(rng.ID, *id)
}

// TestResolveCauseAreaIDsDropsUnknown tests the multi-valued resolution policy
func (suite *VocabularyRepositoryTestSuite) TestResolveCauseAreaIDsDropsUnknown() {
	education := suite.factories.Vocabulary.CauseArea("Education")
	suite.NoError(suite.baseTestSuite.DB.Create(education).Error)
	health := suite.factories.Vocabulary.CauseArea("Health")
	suite.NoError(suite.baseTestSuite.DB.Create(health).Error)

	ids, err := suite.repo.ResolveCauseAreaIDs([]string{"Education", "No Such Cause", "Health"})

	suite.NoError(err)
	suite.Len(ids, 2)
	suite.ElementsMatch([]uuid.UUID{education.ID, health.ID}, ids)
}

// TestResolveCauseAreaIDsEmptyInput tests empty input
func (suite *VocabularyRepositoryTestSuite) TestResolveCauseAreaIDsEmptyInput() {
	ids, err := suite.repo.ResolveCauseAreaIDs(nil)

	suite.NoError(err)
	suite.Empty(ids)
}

// TestNamesAreAlphabetical tests the listing order of name-keyed vocabularies
func (suite *VocabularyRepositoryTestSuite) TestNamesAreAlphabetical() {
	db := suite.baseTestSuite.DB
	suite.NoError(db.Create(suite.factories.Vocabulary.Region("Global")).Error)
	suite.NoError(db.Create(suite.factories.Vocabulary.Region("Africa")).Error)
	suite.NoError(db.Create(suite.factories.Vocabulary.Region("Asia")).Error)

	names, err := suite.repo.RegionNames()

	suite.NoError(err)
	suite.Equal([]string{"Africa", "Asia", "Global"}, names)
}

// TestEmployeeRangeLabelsUseSortOrder tests the explicit sort key
func (suite *VocabularyRepositoryTestSuite) TestEmployeeRangeLabelsUseSortOrder() {
	db := suite.baseTestSuite.DB
	suite.NoError(db.Create(suite.factories.Vocabulary.EmployeeRange("500+", 4)).Error)
	suite.NoError(db.Create(suite.factories.Vocabulary.EmployeeRange("1-10", 1)).Error)
	suite.NoError(db.Create(suite.factories.Vocabulary.EmployeeRange("11-50", 2)).Error)

	labels, err := suite.repo.EmployeeRangeLabels()

	suite.NoError(err)
	// "1-10" sorts before "500+" by the explicit key, not alphabetically
	suite.Equal([]string{"1-10", "11-50", "500+"}, labels)
}

// TestVocabularyRepositoryTestSuite runs the test suite
func TestVocabularyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VocabularyRepositoryTestSuite))
}
