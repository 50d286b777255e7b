package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-garden/pkg/interfaces"
)

const (
	rootModule        = "garden"
	collectionsModule = "garden.collections"
	generatorModule   = "garden.generator"
	deployModule      = "garden.deploy"
	watcherModule     = "garden.watcher"
)

const (
	fieldContentPath = "content_path"
	fieldCollection  = "collection"
	fieldDeployName  = "deploy_target"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CollectionsLogger returns the logger namespace reserved for the content model loader.
func CollectionsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, collectionsModule)
}

// GeneratorLogger returns the logger namespace reserved for static builds.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}

// DeployLogger returns the logger namespace reserved for deploy adapters.
func DeployLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, deployModule)
}

// WatcherLogger returns the logger namespace reserved for the preview watcher.
func WatcherLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, watcherModule)
}

// WithContentContext enriches the provided logger with common content fields
// such as file path and collection name. Empty values are ignored.
func WithContentContext(logger interfaces.Logger, path, collection string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldContentPath] = trimmed
	}
	if trimmed := strings.TrimSpace(collection); trimmed != "" {
		fields[fieldCollection] = trimmed
	}
	return WithFields(logger, fields)
}

// WithDeployContext annotates the logger with the active deploy target.
func WithDeployContext(logger interfaces.Logger, target string) interfaces.Logger {
	if trimmed := strings.TrimSpace(target); trimmed != "" {
		return WithFields(logger, map[string]any{fieldDeployName: trimmed})
	}
	return logger
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
