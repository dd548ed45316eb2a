package config

import (
	"fmt"
	"os"

	"github.com/quantdash/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration: at least one
// scenario, unique non-empty names, and valid parameters per scenario.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true

		if err := scenario.Params.Validate(); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration with one solved
// scenario and one fixed-fraction scenario.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	tenPercent := decimal.NewFromFloat(0.10)

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name: "Solved Fraction",
				Params: domain.PlanParams{
					Salary:           decimal.NewFromInt(60000),
					CurrentAge:       30,
					RetirementAge:    65,
					MaxAge:           100,
					RetirementIncome: decimal.NewFromInt(120000),
					AccumulationRate: decimal.NewFromFloat(0.12),
					DistributionRate: decimal.NewFromFloat(0.05),
					InitialCapital:   decimal.Zero,
				},
			},
			{
				Name: "Fixed 10 Percent",
				Params: domain.PlanParams{
					Salary:             decimal.NewFromInt(60000),
					CurrentAge:         30,
					RetirementAge:      65,
					MaxAge:             100,
					RetirementIncome:   decimal.NewFromInt(120000),
					AccumulationRate:   decimal.NewFromFloat(0.12),
					DistributionRate:   decimal.NewFromFloat(0.05),
					InitialCapital:     decimal.NewFromInt(50000),
					InvestmentFraction: &tenPercent,
				},
			},
		},
	}
}
