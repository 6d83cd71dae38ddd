package di

import (
	"fmt"

	"github.com/aristath/cryptoadvisor/internal/clientdata"
	"github.com/aristath/cryptoadvisor/internal/modules/profile"
	"github.com/rs/zerolog"
)

// InitializeRepositories creates the data access layer
func InitializeRepositories(container *Container, log zerolog.Logger) error {
	if container == nil || container.DB == nil {
		return fmt.Errorf("container database not initialized")
	}

	container.CacheRepo = clientdata.NewRepository(container.DB.Conn())
	container.ProfileRepo = profile.NewRepository(container.DB.Conn(), log)

	return nil
}
