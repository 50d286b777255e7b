package staticcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-garden/internal/generator"
)

func TestBuildSiteHandler_Execute_Build(t *testing.T) {
	cmd := BuildSiteCommand{
		Kinds: []generator.PageKind{generator.KindPost, generator.KindPost, generator.KindTag},
	}

	var capturedOpts generator.BuildOptions
	callbackInvoked := false

	svc := &fakeGeneratorService{
		buildFunc: func(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
			capturedOpts = opts
			return &generator.BuildResult{PagesBuilt: 3}, nil
		},
	}

	handler := NewBuildSiteHandler(svc, nil, FeatureGates{GeneratorEnabled: alwaysTrue})

	cmd.ResultCallback = func(env ResultEnvelope) {
		callbackInvoked = true
		if env.Result == nil {
			t.Fatalf("expected build result, got nil")
		}
		if env.Result.PagesBuilt != 3 {
			t.Fatalf("expected PagesBuilt 3, got %d", env.Result.PagesBuilt)
		}
		if env.Metadata["operation"] != "build" {
			t.Fatalf("expected operation build, got %v", env.Metadata["operation"])
		}
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute build: %v", err)
	}

	if capturedOpts.DryRun {
		t.Fatalf("expected DryRun false")
	}
	if len(capturedOpts.Kinds) != 2 {
		t.Fatalf("expected duplicate kinds collapsed to 2, got %d", len(capturedOpts.Kinds))
	}
	if !callbackInvoked {
		t.Fatal("expected callback to be invoked")
	}
}

func TestBuildSiteHandler_Execute_DryRun(t *testing.T) {
	cmd := BuildSiteCommand{DryRun: true}

	svc := &fakeGeneratorService{
		buildFunc: func(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
			if !opts.DryRun {
				t.Fatal("expected DryRun to propagate")
			}
			return &generator.BuildResult{DryRun: true}, nil
		},
	}

	handler := NewBuildSiteHandler(svc, nil, FeatureGates{GeneratorEnabled: alwaysTrue})
	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute dry run: %v", err)
	}
}

func TestBuildSiteHandler_Execute_GeneratorDisabled(t *testing.T) {
	cmd := BuildSiteCommand{}
	svc := &fakeGeneratorService{}

	handler := NewBuildSiteHandler(svc, nil, FeatureGates{GeneratorEnabled: alwaysFalse})
	err := handler.Execute(context.Background(), cmd)
	if !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
}

func TestBuildSiteHandler_Execute_PropagatesBuildError(t *testing.T) {
	buildErr := errors.New("render failed")
	svc := &fakeGeneratorService{
		buildFunc: func(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
			return &generator.BuildResult{}, buildErr
		},
	}

	callbackInvoked := false
	cmd := BuildSiteCommand{
		ResultCallback: func(env ResultEnvelope) {
			callbackInvoked = true
		},
	}

	handler := NewBuildSiteHandler(svc, nil, FeatureGates{GeneratorEnabled: alwaysTrue})
	if err := handler.Execute(context.Background(), cmd); !errors.Is(err, buildErr) {
		t.Fatalf("expected build error, got %v", err)
	}
	if !callbackInvoked {
		t.Fatal("expected callback to fire even when the build fails")
	}
}

func TestDiffSiteHandler_Execute(t *testing.T) {
	cmd := DiffSiteCommand{Kinds: []generator.PageKind{generator.KindPost}}

	var capturedOpts generator.BuildOptions
	callbackInvoked := false

	svc := &fakeGeneratorService{
		buildFunc: func(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
			capturedOpts = opts
			return &generator.BuildResult{PagesBuilt: 2, DryRun: true}, nil
		},
	}

	handler := NewDiffSiteHandler(svc, nil, FeatureGates{GeneratorEnabled: alwaysTrue})
	cmd.ResultCallback = func(env ResultEnvelope) {
		callbackInvoked = true
		if env.Metadata["operation"] != "diff" {
			t.Fatalf("expected diff operation, got %v", env.Metadata["operation"])
		}
		if env.Result == nil || env.Result.PagesBuilt != 2 {
			t.Fatalf("unexpected diff result: %#v", env.Result)
		}
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute diff: %v", err)
	}
	if !capturedOpts.DryRun {
		t.Fatal("expected DryRun to be true for diff")
	}
	if !callbackInvoked {
		t.Fatal("expected callback to be invoked")
	}
}

func TestDiffSiteHandler_Execute_GeneratorDisabled(t *testing.T) {
	handler := NewDiffSiteHandler(&fakeGeneratorService{}, nil, FeatureGates{GeneratorEnabled: alwaysFalse})
	err := handler.Execute(context.Background(), DiffSiteCommand{})
	if !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
}

func TestCleanSiteHandler_Execute(t *testing.T) {
	cleanCalled := false
	svc := &fakeGeneratorService{
		cleanFunc: func(ctx context.Context) error {
			cleanCalled = true
			return nil
		},
	}

	handler := NewCleanSiteHandler(svc, nil, FeatureGates{GeneratorEnabled: alwaysTrue})
	if err := handler.Execute(context.Background(), CleanSiteCommand{}); err != nil {
		t.Fatalf("execute clean: %v", err)
	}
	if !cleanCalled {
		t.Fatal("expected Clean to be called")
	}
}

func TestCleanSiteHandler_Execute_GeneratorDisabled(t *testing.T) {
	handler := NewCleanSiteHandler(&fakeGeneratorService{}, nil, FeatureGates{GeneratorEnabled: alwaysFalse})
	err := handler.Execute(context.Background(), CleanSiteCommand{})
	if !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
}

func TestBuildSiteCommandValidate(t *testing.T) {
	cmd := BuildSiteCommand{Kinds: []generator.PageKind{"banner"}}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected validation error for unknown page kind")
	}

	cmd = BuildSiteCommand{Kinds: []generator.PageKind{generator.KindHome}}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
}

func TestDiffSiteCommandValidate(t *testing.T) {
	cmd := DiffSiteCommand{Kinds: []generator.PageKind{"gallery"}}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected validation error for unknown page kind")
	}
}

type fakeGeneratorService struct {
	buildFunc func(context.Context, generator.BuildOptions) (*generator.BuildResult, error)
	cleanFunc func(context.Context) error
}

func (f *fakeGeneratorService) Build(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
	if f.buildFunc != nil {
		return f.buildFunc(ctx, opts)
	}
	return nil, nil
}

func (f *fakeGeneratorService) Clean(ctx context.Context) error {
	if f.cleanFunc != nil {
		return f.cleanFunc(ctx)
	}
	return nil
}

func alwaysTrue() bool  { return true }
func alwaysFalse() bool { return false }
