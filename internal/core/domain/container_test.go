package domain_test

import (
	"testing"

	"github.com/melih/craftbot/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainersDeclarationOrder(t *testing.T) {
	assert.Equal(t, []domain.Container{
		domain.Velocity,
		domain.Creative,
		domain.Survival,
		domain.OneBlock,
		domain.SkyBlock,
	}, domain.Containers())
}

func TestContainersReturnsCopy(t *testing.T) {
	list := domain.Containers()
	list[0] = "mutated"
	assert.Equal(t, domain.Velocity, domain.Containers()[0])
}

func TestLookupContainer(t *testing.T) {
	c, ok := domain.LookupContainer("skyblock")
	require.True(t, ok)
	assert.Equal(t, domain.SkyBlock, c)

	for _, name := range []string{"SkyBlock", "/skyblock", "skyblock ", "lobby", ""} {
		_, ok := domain.LookupContainer(name)
		assert.False(t, ok, name)
	}
}

func TestParseContainer(t *testing.T) {
	c, err := domain.ParseContainer("  OneBlock ")
	require.NoError(t, err)
	assert.Equal(t, domain.OneBlock, c)

	_, err = domain.ParseContainer("hub")
	assert.ErrorIs(t, err, domain.ErrUnknownContainer)
}

func TestStatusOf(t *testing.T) {
	statuses := domain.ContainerStatuses{domain.Creative: "Up 2 hours"}
	assert.Equal(t, "Up 2 hours", statuses.StatusOf(domain.Creative))
	assert.Equal(t, domain.MissingStatus, statuses.StatusOf(domain.Velocity))
}
