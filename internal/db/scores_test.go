package db

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScoreRunQuery_NoFilters(t *testing.T) {
	query, args := buildScoreRunQuery(ScoreRunFilters{})

	assert.True(t, strings.Contains(query, "LIMIT $1"))
	require.Len(t, args, 1)
	assert.Equal(t, 50, args[0], "limit defaults to 50")
}

func TestBuildScoreRunQuery_AllFilters(t *testing.T) {
	projectID := uuid.New()
	query, args := buildScoreRunQuery(ScoreRunFilters{
		ProjectID: projectID,
		Kind:      RunKindDCS,
		Limit:     10,
	})

	assert.Contains(t, query, "project_id = $1")
	assert.Contains(t, query, "kind = $2")
	assert.Contains(t, query, "LIMIT $3")
	require.Len(t, args, 3)
	assert.Equal(t, projectID, args[0])
	assert.Equal(t, RunKindDCS, args[1])
	assert.Equal(t, 10, args[2])
}

func TestBuildScoreRunQuery_KindOnly(t *testing.T) {
	query, args := buildScoreRunQuery(ScoreRunFilters{Kind: RunKindPressure, Limit: 5})

	assert.Contains(t, query, "kind = $1")
	assert.Contains(t, query, "LIMIT $2")
	require.Len(t, args, 2)
	assert.Equal(t, RunKindPressure, args[0])
}
