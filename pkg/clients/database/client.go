package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-password/password"
)

var (
	// ErrNotConnected is returned when a method requiring a connection runs before Connect
	ErrNotConnected = errors.New("the database client is not connected")
)

// Client provisions ephemeral databases on a postgres server and applies
// migration scripts to them
//
//go:generate mockgen -package=database -destination ./mock.go -source=client.go
type Client interface {
	Connect(ctx context.Context) (err error)
	Close() (err error)
	GenerateDatabaseName(prefix, buildSuffix string) (name string)
	CreateDatabase(ctx context.Context, name string) (err error)
	DatabaseExists(ctx context.Context, name string) (exists bool, err error)
	CreateLogin(ctx context.Context, databaseName string) (username, passwd string, err error)
	ApplyMigrations(ctx context.Context, databaseName, migrationsDir string) (applied int, err error)
	GetConnectionString(databaseName, username, passwd string) (connectionString string)
}

// NewClient returns a new database.Client connecting to the server the
// config points at
func NewClient(host string, port int, user, passwd, sslMode string) Client {
	return &client{
		host:    host,
		port:    port,
		user:    user,
		passwd:  passwd,
		sslMode: sslMode,
		nowFunc: time.Now,
	}
}

type client struct {
	host    string
	port    int
	user    string
	passwd  string
	sslMode string

	connection *sql.DB
	nowFunc    func() time.Time
}

func (c *client) Connect(ctx context.Context) (err error) {

	log.Debug().Msgf("Connecting to postgres server on %v:%v...", c.host, c.port)

	c.connection, err = sql.Open("postgres", c.dataSourceName("postgres"))
	if err != nil {
		return
	}

	return foundation.Retry(func() error {
		log.Debug().Msg("Checking if postgres server is ready...")
		return c.connection.PingContext(ctx)
	}, foundation.Attempts(12), foundation.DelayMillisecond(5000), foundation.Fixed())
}

func (c *client) Close() (err error) {
	if c.connection == nil {
		return nil
	}
	return c.connection.Close()
}

// GenerateDatabaseName derives a name unique across concurrent runs as long
// as they start in different seconds or use different prefixes
func (c *client) GenerateDatabaseName(prefix, buildSuffix string) (name string) {
	return c.nowFunc().UTC().Format("20060102150405") + prefix + buildSuffix
}

func (c *client) CreateDatabase(ctx context.Context, name string) (err error) {

	if c.connection == nil {
		return ErrNotConnected
	}

	log.Info().Msgf("Creating database %v...", name)

	// identifiers can't be parameterized, quote instead
	_, err = c.connection.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE %v", pq.QuoteIdentifier(name)))

	return
}

func (c *client) DatabaseExists(ctx context.Context, name string) (exists bool, err error) {

	if c.connection == nil {
		return false, ErrNotConnected
	}

	query, args, err := sq.
		Select("1").
		From("pg_database").
		Where(sq.Eq{"datname": name}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return
	}

	var one int
	err = c.connection.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return
	}

	return true, nil
}

// CreateLogin creates a database-scoped login with a generated password, so
// test processes don't run under the admin account
func (c *client) CreateLogin(ctx context.Context, databaseName string) (username, passwd string, err error) {

	if c.connection == nil {
		return "", "", ErrNotConnected
	}

	username = databaseName + "_login"

	passwd, err = password.Generate(32, 10, 0, false, false)
	if err != nil {
		return
	}

	log.Info().Msgf("Creating login %v for database %v...", username, databaseName)

	_, err = c.connection.ExecContext(ctx, fmt.Sprintf("CREATE ROLE %v WITH LOGIN PASSWORD %v", pq.QuoteIdentifier(username), pq.QuoteLiteral(passwd)))
	if err != nil {
		return
	}

	_, err = c.connection.ExecContext(ctx, fmt.Sprintf("GRANT ALL PRIVILEGES ON DATABASE %v TO %v", pq.QuoteIdentifier(databaseName), pq.QuoteIdentifier(username)))

	return
}

// ApplyMigrations runs every .sql file in migrationsDir against the database
// in lexical order
func (c *client) ApplyMigrations(ctx context.Context, databaseName, migrationsDir string) (applied int, err error) {

	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return
	}

	scripts := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		scripts = append(scripts, entry.Name())
	}
	sort.Strings(scripts)

	connection, err := sql.Open("postgres", c.dataSourceName(databaseName))
	if err != nil {
		return
	}
	defer connection.Close()

	for _, script := range scripts {
		log.Info().Msgf("Applying migration script %v to database %v...", script, databaseName)

		var content []byte
		content, err = os.ReadFile(filepath.Join(migrationsDir, script))
		if err != nil {
			return
		}

		_, err = connection.ExecContext(ctx, string(content))
		if err != nil {
			return applied, fmt.Errorf("migration script %v failed: %w", script, err)
		}

		applied++
	}

	return applied, nil
}

// GetConnectionString assembles an ADO.NET style connection string for the
// test processes consuming the database
func (c *client) GetConnectionString(databaseName, username, passwd string) (connectionString string) {

	if username == "" {
		username = c.user
		passwd = c.passwd
	}

	return fmt.Sprintf("Host=%v;Port=%v;Database=%v;Username=%v;Password=%v", c.host, c.port, databaseName, username, passwd)
}

func (c *client) dataSourceName(databaseName string) string {

	dataSourceName := fmt.Sprintf("host=%v port=%v user=%v dbname=%v sslmode=%v", c.host, c.port, c.user, databaseName, c.sslMode)
	if c.passwd != "" {
		dataSourceName += fmt.Sprintf(" password=%v", c.passwd)
	}

	return dataSourceName
}
