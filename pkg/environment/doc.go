// Package environment names the application environments (development,
// staging, production) shared by configuration and logging.
package environment
