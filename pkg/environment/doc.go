// Package environment names the deployment environment a process runs in
// (development, staging, production) and carries it through context.Context
// so loggers and configuration can pick environment specific defaults.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx := environment.WithContext(ctx, env)
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// LoggerExtractor returns a function compatible with logger.ContextExtractor
// that adds an "env" attribute to every record logged with such a context.
package environment
