package filter

import (
	"testing"

	"impact-explorer-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestQuizSessionAccumulatesAnswers(t *testing.T) {
	session := NewQuizSession()
	session.Answer(models.KeyCauseAreas, []string{"Education"})
	session.Answer(models.KeyRegions, []string{"Global", "Africa"})

	criteria := session.Criteria()

	assert.Equal(t, map[string][]string{
		models.KeyCauseAreas: {"Education"},
		models.KeyRegions:    {"Global", "Africa"},
	}, criteria.Categories)
	assert.Empty(t, criteria.Search)
}

func TestQuizSessionLastWriteWins(t *testing.T) {
	session := NewQuizSession()
	session.Answer(models.KeyCauseAreas, []string{"Education", "Health"})
	session.Answer(models.KeyCauseAreas, []string{"Climate"})

	criteria := session.Criteria()

	// Revisiting a question overwrites, never merges
	assert.Equal(t, []string{"Climate"}, criteria.Categories[models.KeyCauseAreas])
}

func TestQuizSessionCopiesAnswerSlices(t *testing.T) {
	values := []string{"Education"}
	session := NewQuizSession()
	session.Answer(models.KeyCauseAreas, values)

	values[0] = "mutated"

	assert.Equal(t, []string{"Education"}, session.Criteria().Categories[models.KeyCauseAreas])
}

func TestCompose(t *testing.T) {
	criteria := Compose([]QuizAnswer{
		{Key: models.KeyCauseAreas, Values: []string{"Education"}},
		{Key: models.KeyOrgType, Values: []string{"Nonprofit"}},
		{Key: models.KeyCauseAreas, Values: []string{"Health"}},
	})

	assert.Equal(t, map[string][]string{
		models.KeyCauseAreas: {"Health"},
		models.KeyOrgType:    {"Nonprofit"},
	}, criteria.Categories)
}

func TestComposeEmpty(t *testing.T) {
	criteria := Compose(nil)

	assert.Empty(t, criteria.Categories)
	assert.Empty(t, criteria.Search)

	// Empty quiz criteria match every organization
	org := models.FlatOrganization{Name: "Anything"}
	assert.True(t, Matches(&org, criteria))
}
