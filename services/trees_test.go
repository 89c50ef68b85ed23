package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuroleaf/models"
	"neuroleaf/storage"
)

func TestPlantTree(t *testing.T) {
	svc, _, user := newTestService(t)

	tree, err := svc.PlantTree(user.ID, "oak")
	require.NoError(t, err)
	assert.Equal(t, "oak", tree.TreeType)
	assert.Equal(t, 1, tree.GrowthStage)

	stored, err := svc.User(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.TotalTreesPlanted)

	_, err = svc.PlantTree(user.ID, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGrowTreeAdvancesStages(t *testing.T) {
	svc, _, user := newTestService(t)

	tree, err := svc.PlantTree(user.ID, "willow")
	require.NoError(t, err)

	tree, err = svc.GrowTree(user.ID, tree.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.GrowthStage)

	tree, err = svc.GrowTree(user.ID, tree.ID, 500)
	require.NoError(t, err)
	assert.Equal(t, 5, tree.GrowthStage)
	assert.Equal(t, 560, tree.XPContributed)
}

func TestWaterTree(t *testing.T) {
	svc, _, user := newTestService(t)

	tree, err := svc.PlantTree(user.ID, "oak")
	require.NoError(t, err)
	require.Nil(t, tree.LastWatered)

	tree, err = svc.WaterTree(user.ID, tree.ID)
	require.NoError(t, err)
	assert.NotNil(t, tree.LastWatered)
	assert.Equal(t, WateringXP, tree.XPContributed)
}

func TestDecorateTree(t *testing.T) {
	svc, _, user := newTestService(t)

	tree, err := svc.PlantTree(user.ID, "oak")
	require.NoError(t, err)

	tree, err = svc.DecorateTree(user.ID, tree.ID, "lights")
	require.NoError(t, err)
	assert.Equal(t, []string{"lights"}, tree.DecorationList())

	// Duplicate decorations are no-ops.
	tree, err = svc.DecorateTree(user.ID, tree.ID, "lights")
	require.NoError(t, err)
	assert.Equal(t, []string{"lights"}, tree.DecorationList())

	tree, err = svc.DecorateTree(user.ID, tree.ID, "star")
	require.NoError(t, err)
	assert.Equal(t, []string{"lights", "star"}, tree.DecorationList())

	_, err = svc.DecorateTree(user.ID, tree.ID, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTreeOwnership(t *testing.T) {
	svc, _, user := newTestService(t)

	other := &models.User{Username: "other", Level: 1}
	require.NoError(t, svc.CreateUser(other))

	tree, err := svc.PlantTree(other.ID, "oak")
	require.NoError(t, err)

	// Another user's tree is indistinguishable from a missing one.
	_, err = svc.GrowTree(user.ID, tree.ID, 10)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = svc.WaterTree(user.ID, tree.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
