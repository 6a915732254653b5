// Package fixture seeds a database with canned SQL scripts for integration tests.
//
// Always run ClearAllTables before loading anything. Each Standard* method
// runs only its own script and never calls another one; StandardData and
// Reset are the only methods that chain scripts.
package fixture

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Taichi-iskw/webvideo/internal/repository/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// DefaultDir is the fixture directory relative to the project root
const DefaultDir = "sql/data"

// Fixture names a SQL script inside the fixture directory
type Fixture string

const (
	ClearAllFixture    Fixture = "deleteFromAllTables.sql"
	UsersFixture       Fixture = "standardUsers.sql"
	RolesFixture       Fixture = "standardRoles.sql"
	UserRolesFixture   Fixture = "standardUserRoles.sql"
	OrgsFixture        Fixture = "standardOrgs.sql"
	OrgUsersFixture    Fixture = "standardOrgUsers.sql"
	VideosFixture      Fixture = "standardVideos.sql"
	VideoImagesFixture Fixture = "standardVideosImages.sql"
)

// StandardSequence is the load order of the standard data set.
// Later scripts reference rows inserted by earlier ones.
var StandardSequence = []Fixture{
	UsersFixture,
	RolesFixture,
	UserRolesFixture,
	OrgsFixture,
	OrgUsersFixture,
	VideosFixture,
	VideoImagesFixture,
}

var fixtureNames = map[string]Fixture{
	"users":        UsersFixture,
	"roles":        RolesFixture,
	"user-roles":   UserRolesFixture,
	"orgs":         OrgsFixture,
	"org-users":    OrgUsersFixture,
	"videos":       VideosFixture,
	"video-images": VideoImagesFixture,
}

// ByName resolves a short fixture name such as "user-roles"
func ByName(name string) (Fixture, bool) {
	f, ok := fixtureNames[name]
	return f, ok
}

// Names returns the short names of the standard fixtures in load order
func Names() []string {
	names := make([]string, 0, len(StandardSequence))
	for _, f := range StandardSequence {
		for name, candidate := range fixtureNames {
			if candidate == f {
				names = append(names, name)
			}
		}
	}
	return names
}

// Executor runs a single SQL statement
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Loader executes fixture scripts against an Executor
type Loader struct {
	exec   Executor
	fsys   fs.FS
	logger zerolog.Logger
}

// NewLoader creates a Loader reading scripts from fsys
func NewLoader(exec Executor, fsys fs.FS, logger zerolog.Logger) *Loader {
	return &Loader{
		exec:   exec,
		fsys:   fsys,
		logger: logger.With().Str("component", "fixture_loader").Logger(),
	}
}

// NewDirLoader creates a Loader reading scripts from dir on disk
func NewDirLoader(exec Executor, dir string, logger zerolog.Logger) *Loader {
	return NewLoader(exec, os.DirFS(dir), logger)
}

// DirFromProjectRoot returns the fixture directory of a project checkout
func DirFromProjectRoot(projectRoot string) string {
	return filepath.Join(projectRoot, filepath.FromSlash(DefaultDir))
}

// Reset clears every table and loads the standard data set
func (l *Loader) Reset(ctx context.Context) error {
	if err := l.ClearAllTables(ctx); err != nil {
		return err
	}
	return l.StandardData(ctx)
}

// ClearAllTables deletes the rows of every table
func (l *Loader) ClearAllTables(ctx context.Context) error {
	return l.Run(ctx, ClearAllFixture)
}

// StandardData loads every standard fixture in StandardSequence order,
// stopping at the first failure
func (l *Loader) StandardData(ctx context.Context) error {
	for _, f := range StandardSequence {
		if err := l.Run(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// StandardUsers loads the users fixture
func (l *Loader) StandardUsers(ctx context.Context) error {
	return l.Run(ctx, UsersFixture)
}

// StandardRoles loads the roles fixture
func (l *Loader) StandardRoles(ctx context.Context) error {
	return l.Run(ctx, RolesFixture)
}

// StandardUserRoles links users to roles; users and roles must be loaded
func (l *Loader) StandardUserRoles(ctx context.Context) error {
	return l.Run(ctx, UserRolesFixture)
}

// StandardOrgs loads the organizations fixture
func (l *Loader) StandardOrgs(ctx context.Context) error {
	return l.Run(ctx, OrgsFixture)
}

// StandardOrgUsers links users to organizations; both must be loaded
func (l *Loader) StandardOrgUsers(ctx context.Context) error {
	return l.Run(ctx, OrgUsersFixture)
}

// StandardVideos loads the video rows
func (l *Loader) StandardVideos(ctx context.Context) error {
	return l.Run(ctx, VideosFixture)
}

// StandardVideoImages loads the videoimage rows referenced by the standard videos
func (l *Loader) StandardVideoImages(ctx context.Context) error {
	return l.Run(ctx, VideoImagesFixture)
}

// Run executes the statements of one fixture script in file order.
// Statements that already ran stay applied when a later one fails.
func (l *Loader) Run(ctx context.Context, f Fixture) error {
	script, err := fs.ReadFile(l.fsys, string(f))
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", f, err)
	}

	statements := splitStatements(string(script))
	for i, stmt := range statements {
		l.logger.Debug().Str("fixture", string(f)).Int("statement", i+1).Msg("executing fixture statement")

		if _, err := l.exec.Exec(ctx, stmt); err != nil {
			return common.HandlePostgreSQLError(err, fmt.Sprintf("fixture %s: statement %d of %d failed", f, i+1, len(statements)))
		}
	}

	l.logger.Info().Str("fixture", string(f)).Int("statements", len(statements)).Msg("fixture loaded")
	return nil
}
