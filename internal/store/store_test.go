package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

func TestRecommendationSetType(t *testing.T) {
	set := RecommendationSet{
		UID: "user-1",
		Recommendations: []types.Recommendation{
			{RoleID: "data_analyst", Title: "Data Analyst", FitScore: 68},
		},
	}

	assert.Equal(t, "user-1", set.UID)
	assert.Len(t, set.Recommendations, 1)
	assert.Equal(t, 68, set.Recommendations[0].FitScore)
}
