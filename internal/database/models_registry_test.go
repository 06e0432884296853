package database

import (
	"testing"

	modelspkg "anondo/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesParticipation(t *testing.T) {
	found := false
	for _, model := range PersistentModels() {
		if _, ok := model.(*modelspkg.EventParticipant); ok {
			found = true
			break
		}
	}
	require.True(t, found, "PersistentModels should include EventParticipant")
}

func TestPersistentModels_IncludesFollowGraph(t *testing.T) {
	found := false
	for _, model := range PersistentModels() {
		if _, ok := model.(*modelspkg.Follow); ok {
			found = true
			break
		}
	}
	require.True(t, found, "PersistentModels should include Follow")
}
