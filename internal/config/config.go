package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the config file name written by `bank init`.
const Filename = "bank.yaml"

// Config represents the top-level bank.yaml configuration.
type Config struct {
	Bank      BankConfig      `yaml:"bank"`
	Storage   StorageConfig   `yaml:"storage"`
	Accounts  AccountsConfig  `yaml:"accounts"`
	Interest  InterestConfig  `yaml:"interest"`
	Security  SecurityConfig  `yaml:"security"`
	Statement StatementConfig `yaml:"statement"`
}

// BankConfig names the institution shown in the shell banner.
type BankConfig struct {
	Name string `yaml:"name"`
}

// StorageConfig locates the files the bank reads and writes.
// Relative paths are resolved against the config file's directory.
type StorageConfig struct {
	Snapshot string `yaml:"snapshot"`
	AuditLog string `yaml:"audit_log"`
}

// AccountsConfig controls account numbering and restored credentials.
type AccountsConfig struct {
	NumberPrefix   string `yaml:"number_prefix"`
	NumberBase     int    `yaml:"number_base"`
	PlaceholderPIN string `yaml:"placeholder_pin"`
}

// InterestConfig holds annual nominal rates per account category.
type InterestConfig struct {
	Savings float64 `yaml:"savings"`
	Current float64 `yaml:"current"`
}

// SecurityConfig controls login lockout and the admin gate.
type SecurityConfig struct {
	MaxLoginAttempts int    `yaml:"max_login_attempts"`
	AdminPassword    string `yaml:"admin_password"`
}

// StatementConfig controls statement rendering.
type StatementConfig struct {
	DefaultCount int `yaml:"default_count"`
}

// Load reads a bank.yaml file from disk. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the bank's standard settings.
func Default(bankName string) *Config {
	if bankName == "" {
		bankName = "Banking Management System"
	}
	return &Config{
		Bank: BankConfig{
			Name: bankName,
		},
		Storage: StorageConfig{
			Snapshot: "bank_data.csv",
			AuditLog: filepath.Join("logs", "transactions.csv"),
		},
		Accounts: AccountsConfig{
			NumberPrefix:   "ACCT",
			NumberBase:     1000,
			PlaceholderPIN: "0000",
		},
		Interest: InterestConfig{
			Savings: 0.04,
			Current: 0.01,
		},
		Security: SecurityConfig{
			MaxLoginAttempts: 3,
			AdminPassword:    "admin123",
		},
		Statement: StatementConfig{
			DefaultCount: 5,
		},
	}
}

// Validate rejects settings the bank cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Storage.Snapshot == "" {
		errs = append(errs, errors.New("storage.snapshot is empty"))
	}
	if c.Accounts.NumberBase < 0 {
		errs = append(errs, fmt.Errorf("accounts.number_base %d is negative", c.Accounts.NumberBase))
	}
	if c.Accounts.PlaceholderPIN == "" {
		errs = append(errs, errors.New("accounts.placeholder_pin is empty"))
	}
	if c.Interest.Savings <= 0 || c.Interest.Current <= 0 {
		errs = append(errs, errors.New("interest rates must be positive"))
	}
	if c.Security.MaxLoginAttempts < 1 {
		errs = append(errs, fmt.Errorf("security.max_login_attempts %d must be at least 1", c.Security.MaxLoginAttempts))
	}
	if c.Statement.DefaultCount < 1 {
		errs = append(errs, fmt.Errorf("statement.default_count %d must be at least 1", c.Statement.DefaultCount))
	}
	return errors.Join(errs...)
}

// Resolve returns p unchanged if absolute, otherwise joined onto dir.
func Resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
