package records_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateRedisContainerClientOrSkip(t)

	runRepositoryContract(t, records.NewRedisRepository(&records.RedisRepoConfig{
		Client:  client,
		Profile: "integration",
	}))
}
