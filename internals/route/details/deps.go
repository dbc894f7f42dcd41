package details

import (
	"github.com/go-playground/validator/v10"

	"assurance_backend/internals/configs"
	database "assurance_backend/internals/databases"
)

// Deps is everything a feature needs to build its controllers.
type Deps struct {
	Config   configs.Config
	Store    *database.Store
	Validate *validator.Validate
}
