package views

import (
	"context"
	"time"

	"dsld/internal/filter"
	"dsld/internal/location/models"
	"dsld/internal/platform/cache"
)

// NameOptions loads a list of names through the option cache. A failing
// load is recorded and yields an empty, degraded list.
func NameOptions(ctx context.Context, c cache.Options, rec Recorder, key, operation string, load func(context.Context) ([]string, error)) models.OptionList {
	start := time.Now()
	names, err := cache.Remember(ctx, c, key, load)
	if rec.Observe(ctx, operation, start, err) {
		return models.OptionList{Options: []models.Option{}, Degraded: true}
	}
	return models.OptionList{Options: models.OptionsFromNames(names)}
}

// LocationNameOptions lists the cascading name options of level under
// parent, or an empty list when the parent selection is incomplete.
func LocationNameOptions(ctx context.Context, c cache.Options, rec Recorder, level filter.Level, parent filter.Location,
	load func(context.Context, filter.Level, filter.Location) ([]string, error),
) models.OptionList {
	if !parent.Cascades(level) {
		return models.OptionList{Options: []models.Option{}}
	}
	var key string
	switch level {
	case filter.LevelProvince:
		key = cache.Key(rec.Dataset, "locations", string(level), parent.Department)
	case filter.LevelDistrict:
		key = cache.Key(rec.Dataset, "locations", string(level), parent.Department, parent.Province)
	default:
		key = cache.Key(rec.Dataset, "locations", string(level))
	}
	return NameOptions(ctx, c, rec, key, "options_"+string(level), func(ctx context.Context) ([]string, error) {
		return load(ctx, level, parent)
	})
}
