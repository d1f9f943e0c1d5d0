package benchmark

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

type policyFile struct {
	MinSpan              int                `mapstructure:"min_span" validate:"gte=0"`
	MaxSpan              int                `mapstructure:"max_span" validate:"gte=0"`
	MaxLayers            int                `mapstructure:"max_layers" validate:"gte=1"`
	TargetVariableRatio  map[string]float64 `mapstructure:"target_variable_ratio"`
	BestCostSavingsRatio float64            `mapstructure:"best_cost_savings_ratio" validate:"gte=0,lte=1"`
	HighLeverageGroup    string             `mapstructure:"high_leverage_group"`
}

// LoadPolicy reads a benchmark policy from the given file (yaml, toml or
// json, by extension). Unset fields fall back to the standard policy; the
// "default" compensation target must be present in the file's target map when
// one is given.
func LoadPolicy(path string) (domain.BenchmarkPolicy, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := domain.DefaultPolicy()
	v.SetDefault("min_span", defaults.MinSpan)
	v.SetDefault("max_span", defaults.MaxSpan)
	v.SetDefault("max_layers", defaults.MaxLayers)
	v.SetDefault("best_cost_savings_ratio", defaults.BestCostSavingsRatio)
	v.SetDefault("high_leverage_group", defaults.HighLeverageGroup)

	if err := v.ReadInConfig(); err != nil {
		return domain.BenchmarkPolicy{}, fmt.Errorf("failed to read policy file: %w", err)
	}

	var file policyFile
	if err := v.Unmarshal(&file); err != nil {
		return domain.BenchmarkPolicy{}, fmt.Errorf("failed to parse policy file: %w", err)
	}

	if err := validator.New().Struct(file); err != nil {
		return domain.BenchmarkPolicy{}, fmt.Errorf("invalid policy %q: %w", path, err)
	}
	if len(file.TargetVariableRatio) == 0 {
		file.TargetVariableRatio = defaults.TargetVariableRatio
	} else if _, ok := file.TargetVariableRatio[domain.DefaultTargetKey]; !ok {
		return domain.BenchmarkPolicy{}, ErrMissingDefaultTarget
	}

	return domain.BenchmarkPolicy{
		MinSpan:              file.MinSpan,
		MaxSpan:              file.MaxSpan,
		MaxLayers:            file.MaxLayers,
		TargetVariableRatio:  file.TargetVariableRatio,
		BestCostSavingsRatio: file.BestCostSavingsRatio,
		HighLeverageGroup:    file.HighLeverageGroup,
	}, nil
}
