package staticcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-garden/internal/generator"
)

const (
	buildSiteMessageType = "garden.static.build"
	diffSiteMessageType  = "garden.static.diff"
	cleanSiteMessageType = "garden.static.clean"
)

var knownKinds = map[generator.PageKind]struct{}{
	generator.KindHome:            {},
	generator.KindExperienceIndex: {},
	generator.KindBlogIndex:       {},
	generator.KindPost:            {},
	generator.KindProjectIndex:    {},
	generator.KindProject:         {},
	generator.KindTag:             {},
}

// ResultCallback receives build results produced by generator operations. The callback is optional
// and is invoked synchronously from the handler when a BuildResult is available.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a static command execution that generated a BuildResult.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Metadata map[string]any
}

// BuildSiteCommand executes a generator build using the provided filters.
type BuildSiteCommand struct {
	Kinds          []generator.PageKind `json:"kinds,omitempty"`
	DryRun         bool                 `json:"dry_run,omitempty"`
	ResultCallback ResultCallback       `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate ensures the page kind filter only names known template families.
func (m BuildSiteCommand) Validate() error {
	errs := validation.Errors{}
	for _, kind := range m.Kinds {
		if _, ok := knownKinds[kind]; !ok {
			errs["kinds"] = validation.NewError("garden.static.build.kind_invalid", "kinds must contain known page kinds")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DiffSiteCommand performs a dry-run build to surface differences without writing artifacts.
type DiffSiteCommand struct {
	Kinds          []generator.PageKind `json:"kinds,omitempty"`
	ResultCallback ResultCallback       `json:"-"`
}

// Type implements command.Message.
func (DiffSiteCommand) Type() string { return diffSiteMessageType }

// Validate ensures the page kind filter only names known template families.
func (m DiffSiteCommand) Validate() error {
	errs := validation.Errors{}
	for _, kind := range m.Kinds {
		if _, ok := knownKinds[kind]; !ok {
			errs["kinds"] = validation.NewError("garden.static.diff.kind_invalid", "kinds must contain known page kinds")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CleanSiteCommand clears generator artifacts from the configured storage backend.
type CleanSiteCommand struct{}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return cleanSiteMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (CleanSiteCommand) Validate() error { return nil }

// FeatureGates exposes runtime switches used to guard handler execution.
type FeatureGates struct {
	GeneratorEnabled func() bool
}

func (g FeatureGates) generatorEnabled() bool {
	if g.GeneratorEnabled == nil {
		return false
	}
	return g.GeneratorEnabled()
}
