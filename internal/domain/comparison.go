package domain

// Scenario is a named set of plan parameters.
type Scenario struct {
	Name   string     `json:"name" yaml:"name"`
	Params PlanParams `json:"params" yaml:"params"`
}

// Configuration is the top-level structure of a scenario input file.
type Configuration struct {
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}

// ScenarioSummary pairs a scenario name with its computed results.
type ScenarioSummary struct {
	Name    string       `json:"name"`
	Results *PlanResults `json:"results"`
}

// PlanComparison holds the results of every scenario in a configuration,
// in input order.
type PlanComparison struct {
	Scenarios []ScenarioSummary `json:"scenarios"`
}
