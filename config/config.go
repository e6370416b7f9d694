// Package config loads daemon configuration from YAML and carries the
// default roster.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aioffice/aioffice/agent"
)

// Duration is a time.Duration that also unmarshals from YAML strings
// like "500ms" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration %q", value.Value)
	}
	*d = Duration(n)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the top-level daemon configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Provider   ProviderConfig   `yaml:"provider"`
	Simulation SimulationConfig `yaml:"simulation"`
	Storage    StorageConfig    `yaml:"storage"`
	Agents     []AgentConfig    `yaml:"agents"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string     `yaml:"addr"`
	Auth AuthConfig `yaml:"auth"`
}

// AuthConfig configures API authentication. AdminPasswordHash is a
// bcrypt hash; leaving it empty disables the login endpoint.
type AuthConfig struct {
	JWTSecret         string   `yaml:"jwt_secret"`
	AdminUser         string   `yaml:"admin_user"`
	AdminPasswordHash string   `yaml:"admin_password_hash"`
	TokenTTL          Duration `yaml:"token_ttl"`
}

// ProviderConfig selects and configures the generation backend.
type ProviderConfig struct {
	Kind    string   `yaml:"kind"` // "ollama" or "mock"
	BaseURL string   `yaml:"base_url"`
	Model   string   `yaml:"model"`
	Timeout Duration `yaml:"timeout"`
}

// SimulationConfig controls pacing and creative-stage concurrency.
type SimulationConfig struct {
	WorkDelay          Duration `yaml:"work_delay"`
	ChatDelay          Duration `yaml:"chat_delay"`
	SequentialCreative bool     `yaml:"sequential_creative"`
}

// StorageConfig names the on-disk state file and the task archive.
type StorageConfig struct {
	StateFile   string `yaml:"state_file"`
	ArchivePath string `yaml:"archive_path"`
}

// AgentConfig describes one roster member.
type AgentConfig struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Role          string   `yaml:"role"`
	Category      string   `yaml:"category"`
	Skills        []string `yaml:"skills,omitempty"`
	Traits        []string `yaml:"traits,omitempty"`
	Tools         []string `yaml:"tools,omitempty"`
	Collaborators []string `yaml:"collaborators,omitempty"`
	ReportsTo     string   `yaml:"reports_to,omitempty"`
}

// Load reads the configuration at path, layered over the defaults. A
// missing file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Provider.Kind {
	case "ollama", "mock":
	default:
		return fmt.Errorf("unknown provider kind %q", c.Provider.Kind)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("config defines no agents")
	}
	seen := make(map[string]bool, len(c.Agents))
	for _, a := range c.Agents {
		if a.ID == "" || a.Name == "" {
			return fmt.Errorf("agent entries need id and name")
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate agent id %q", a.ID)
		}
		seen[a.ID] = true
		if _, err := parseCategory(a.Category); err != nil {
			return fmt.Errorf("agent %s: %w", a.ID, err)
		}
		if !agent.Role(a.Role).Valid() {
			return fmt.Errorf("agent %s: unknown role %q", a.ID, a.Role)
		}
	}
	return nil
}

// Roster converts the configured agents into runtime descriptors.
func (c *Config) Roster() []*agent.Agent {
	out := make([]*agent.Agent, 0, len(c.Agents))
	for _, a := range c.Agents {
		category, _ := parseCategory(a.Category)
		out = append(out, &agent.Agent{
			ID:            a.ID,
			Name:          a.Name,
			Role:          agent.Role(a.Role),
			Category:      category,
			Skills:        a.Skills,
			Traits:        a.Traits,
			Tools:         a.Tools,
			Collaborators: a.Collaborators,
			ReportsTo:     a.ReportsTo,
		})
	}
	return out
}

// Delays maps the pacing settings onto the runtime delays.
func (c *Config) Delays() agent.Delays {
	d := agent.DefaultDelays()
	if c.Simulation.WorkDelay > 0 {
		d.Work = c.Simulation.WorkDelay.Std()
	}
	if c.Simulation.ChatDelay > 0 {
		d.Chat = c.Simulation.ChatDelay.Std()
	}
	if c.Provider.Timeout > 0 {
		d.Generation = c.Provider.Timeout.Std()
	}
	return d
}

func parseCategory(s string) (agent.Category, error) {
	switch agent.Category(s) {
	case agent.CategoryCoder, agent.CategoryAnalyst, agent.CategoryImage,
		agent.CategoryText, agent.CategoryCoordinator:
		return agent.Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}
