// Package repomanager vends repository implementations bound to a DBTX and
// exposes the schema migration hook. Services hold a manager plus a *sql.DB
// and rebind repositories onto a transaction when a unit of work needs one.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/vmelnikov/jobport/internal/dbx"
	"github.com/vmelnikov/jobport/internal/server/repositories/applications"
	"github.com/vmelnikov/jobport/internal/server/repositories/contacts"
	"github.com/vmelnikov/jobport/internal/server/repositories/jobs"
	"github.com/vmelnikov/jobport/internal/server/repositories/savedjobs"
	"github.com/vmelnikov/jobport/internal/server/repositories/users"
	"github.com/vmelnikov/jobport/internal/server/repositories/verificationcodes"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Jobs(db dbx.DBTX) jobs.Repository
	Applications(db dbx.DBTX) applications.Repository
	SavedJobs(db dbx.DBTX) savedjobs.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	VerificationCodes(db dbx.DBTX) verificationcodes.Repository
}
