package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lifetracker/internal/dbx"
	"github.com/dmitrijs2005/lifetracker/internal/server/repositories/activity"
	"github.com/dmitrijs2005/lifetracker/internal/server/repositories/nutrition"
	"github.com/dmitrijs2005/lifetracker/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Nutrition(db dbx.DBTX) nutrition.Repository
	Activity(db dbx.DBTX) activity.Repository
}
