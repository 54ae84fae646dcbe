// Package environment carries the application environment (development,
// staging, production) from APP_ENV through contexts and logs.
//
//	env := environment.Parse(cfg.Env)
//	router.Use(environment.Middleware(env))
//
//	if environment.IsProduction(r.Context()) {
//		// secure cookies, JSON logs
//	}
package environment
