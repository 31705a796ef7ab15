package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingSolution is returned when the config does not name a solution file
	ErrMissingSolution = errors.New("the config has no solution set")

	// ErrNoProjects is returned when the config has no publishable projects
	ErrNoProjects = errors.New("the config has no projects set")
)

// RunnerConfig represents the configuration for the entire pipeline run
type RunnerConfig struct {
	Solution     string           `yaml:"solution"`
	ArtifactsDir string           `yaml:"artifactsDir,omitempty"`
	Projects     []*ProjectConfig `yaml:"projects,omitempty"`
	TestProjects []string         `yaml:"testProjects,omitempty"`
	Publish      *PublishConfig   `yaml:"publish,omitempty"`
	Apim         *ApimConfig      `yaml:"apim,omitempty"`
	Infra        *InfraConfig     `yaml:"infra,omitempty"`
	Databases    *DatabasesConfig `yaml:"databases,omitempty"`
}

func (c *RunnerConfig) SetDefaults() {
	if c.ArtifactsDir == "" {
		c.ArtifactsDir = "artifacts"
	}

	if c.Publish == nil {
		c.Publish = &PublishConfig{}
	}
	c.Publish.SetDefaults()

	if c.Databases == nil {
		c.Databases = &DatabasesConfig{}
	}
	c.Databases.SetDefaults()

	for _, p := range c.Projects {
		p.SetDefaults()
	}
}

func (c *RunnerConfig) Validate() (err error) {
	if c.Solution == "" {
		return ErrMissingSolution
	}
	if len(c.Projects) == 0 {
		return ErrNoProjects
	}

	apiProjects := 0
	for _, p := range c.Projects {
		if err = p.Validate(); err != nil {
			return
		}
		if p.Role == ProjectRoleAPI {
			apiProjects++
		}
	}
	if apiProjects > 1 {
		return fmt.Errorf("config has %v projects with role api, at most 1 is allowed", apiProjects)
	}

	if c.Apim != nil {
		if err = c.Apim.Validate(); err != nil {
			return
		}
	}

	if err = c.Databases.Validate(); err != nil {
		return
	}

	return nil
}

// GetAPIProject returns the project carrying the api role, if any
func (c *RunnerConfig) GetAPIProject() *ProjectConfig {
	for _, p := range c.Projects {
		if p.Role == ProjectRoleAPI {
			return p
		}
	}
	return nil
}

// ProjectRole determines any special handling a project gets during publishing
type ProjectRole string

const (
	ProjectRoleDefault ProjectRole = ""
	ProjectRoleAPI     ProjectRole = "api"
)

// ProjectConfig describes a single publishable project
type ProjectConfig struct {
	Path string      `yaml:"path"`
	Name string      `yaml:"name,omitempty"`
	Role ProjectRole `yaml:"role,omitempty"`
	Zip  bool        `yaml:"zip,omitempty"`
}

func (c *ProjectConfig) SetDefaults() {
	if c.Name == "" {
		parts := strings.Split(strings.TrimRight(c.Path, "/"), "/")
		c.Name = parts[len(parts)-1]
	}
}

func (c *ProjectConfig) Validate() (err error) {
	if c.Path == "" {
		return errors.New("config has a project without path")
	}
	switch c.Role {
	case ProjectRoleDefault, ProjectRoleAPI:
	default:
		return fmt.Errorf("project %v has unsupported role %v", c.Path, c.Role)
	}
	return nil
}

// PublishConfig controls how publish steps are executed
type PublishConfig struct {
	Parallel       bool `yaml:"parallel,omitempty"`
	MaxConcurrency int  `yaml:"maxConcurrency,omitempty"`
}

func (c *PublishConfig) SetDefaults() {
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = 4
	}
}

// ApimConfig lists the approved OpenAPI specification files copied into the
// ApimPublish folder for API management publishing
type ApimConfig struct {
	FolderName string            `yaml:"folderName,omitempty"`
	Specs      []*ApimSpecConfig `yaml:"specs,omitempty"`
}

func (c *ApimConfig) GetFolderName() string {
	if c == nil || c.FolderName == "" {
		return "ApimPublish"
	}
	return c.FolderName
}

func (c *ApimConfig) Validate() (err error) {
	for _, s := range c.Specs {
		if s.Name == "" || s.Source == "" {
			return errors.New("apim specs require both name and source")
		}
	}
	return nil
}

// ApimSpecConfig maps one approved OpenAPI specification file to its api name
type ApimSpecConfig struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

// InfraConfig describes the infrastructure-as-code packaging step
type InfraConfig struct {
	ResourceGroupProject string   `yaml:"resourceGroupProject"`
	DatabaseAdminProject string   `yaml:"databaseAdminProject"`
	OutputName           string   `yaml:"outputName,omitempty"`
	MigrationDirs        []string `yaml:"migrationDirs,omitempty"`
}

// DatabasesConfig holds the postgres server credentials and the two ephemeral
// database definitions; the password is expected to come from the environment
type DatabasesConfig struct {
	Host        string `yaml:"host,omitempty" env:"DB_HOST,overwrite"`
	Port        int    `yaml:"port,omitempty" env:"DB_PORT,overwrite"`
	User        string `yaml:"user,omitempty" env:"DB_USER,overwrite"`
	Password    string `yaml:"password,omitempty" env:"DB_PASSWORD,overwrite"`
	SslMode     string `yaml:"sslMode,omitempty" env:"DB_SSLMODE,overwrite"`
	CreateLogin bool   `yaml:"createLogin,omitempty"`

	Main *EphemeralDatabaseConfig `yaml:"main,omitempty"`
	Apim *EphemeralDatabaseConfig `yaml:"apim,omitempty"`
}

func (c *DatabasesConfig) SetDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.User == "" {
		c.User = "postgres"
	}
	if c.SslMode == "" {
		c.SslMode = "disable"
	}

	if c.Main == nil {
		c.Main = &EphemeralDatabaseConfig{}
	}
	c.Main.SetDefaults("DatabaseConnectionString")

	if c.Apim == nil {
		c.Apim = &EphemeralDatabaseConfig{}
	}
	c.Apim.SetDefaults("ApimConsumptionDatabaseConnectionString")
}

func (c *DatabasesConfig) Validate() (err error) {
	if err = c.Main.Validate(); err != nil {
		return
	}
	return c.Apim.Validate()
}

// EphemeralDatabaseConfig describes one ephemeral database to provision; an
// empty prefix disables provisioning for that database
type EphemeralDatabaseConfig struct {
	Prefix        string `yaml:"prefix,omitempty"`
	MigrationsDir string `yaml:"migrationsDir,omitempty"`
	Variable      string `yaml:"variable,omitempty"`
}

func (c *EphemeralDatabaseConfig) SetDefaults(defaultVariable string) {
	if c.Variable == "" {
		c.Variable = defaultVariable
	}
}

func (c *EphemeralDatabaseConfig) Validate() (err error) {
	if c.Prefix != "" && c.MigrationsDir == "" {
		return fmt.Errorf("database prefix %v has no migrationsDir set", c.Prefix)
	}
	return nil
}

// IsEnabled indicates whether this ephemeral database should be provisioned
func (c *EphemeralDatabaseConfig) IsEnabled() bool {
	return c != nil && c.Prefix != ""
}
