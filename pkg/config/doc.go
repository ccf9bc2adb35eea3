// Package config loads configuration structs from environment variables.
//
// It is a thin layer over caarlos0/env and godotenv: struct fields are
// annotated with `env` tags, the default .env file is picked up once per
// process, and additional env files can be layered in with LoadEnv. The
// shield packages define their own Config structs (e.g. jwt.Config) and host
// applications load them here at startup.
package config
