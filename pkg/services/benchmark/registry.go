package benchmark

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

// Registry exposes named benchmark policy profiles loaded from an INI file.
// Each section is one profile; keys mirror the policy fields, and a child
// section `<profile>.targets` carries per-function compensation targets.
//
//	[enterprise]
//	min_span = 6
//	max_layers = 8
//	[enterprise.targets]
//	default = 15
//	Sales = 45
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetPolicy(ctx context.Context, profile string) (domain.BenchmarkPolicy, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		name := section.Name()
		if name == ini.DefaultSection || strings.Contains(name, ".") {
			continue
		}
		if len(section.Keys()) > 0 {
			profiles = append(profiles, name)
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetPolicy(_ context.Context, profile string) (domain.BenchmarkPolicy, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil {
		return domain.BenchmarkPolicy{}, fmt.Errorf("profile %s not found", profile)
	}

	policy := domain.DefaultPolicy()
	policy.MinSpan = section.Key("min_span").MustInt(policy.MinSpan)
	policy.MaxSpan = section.Key("max_span").MustInt(policy.MaxSpan)
	policy.MaxLayers = section.Key("max_layers").MustInt(policy.MaxLayers)
	policy.BestCostSavingsRatio = section.Key("best_cost_savings_ratio").MustFloat64(policy.BestCostSavingsRatio)
	policy.HighLeverageGroup = section.Key("high_leverage_group").MustString(policy.HighLeverageGroup)

	if targetSection, err := r.cfg.GetSection(profile + ".targets"); err == nil {
		targets := make(map[string]float64)
		for _, key := range targetSection.Keys() {
			targets[key.Name()] = key.MustFloat64(0)
		}
		if _, ok := targets[domain.DefaultTargetKey]; !ok {
			return domain.BenchmarkPolicy{}, ErrMissingDefaultTarget
		}
		policy.TargetVariableRatio = targets
	}

	return policy, nil
}
