// Package environment defines the deployment environment of a gtinkit binary
// (development, staging or production) and normalises its common spellings.
//
//	env := environment.Parse(os.Getenv("GTIN_ENV")) // "prod" -> Production
//	if env.IsProduction() {
//	    // ...
//	}
//
// Environment implements encoding.TextUnmarshaler so it can be used directly
// as a field of a config struct loaded by the config package.
package environment
