// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls, so every component constructed from the
// same config type agrees on its values.
//
// A .env file in the working directory is loaded automatically on first
// use; parsing is done by the caarlos0/env library.
//
// Basic usage:
//
//	type SearchConfig struct {
//		Collection string `env:"SEARCH_COLLECTION" envDefault:"devices"`
//		Limit      int    `env:"SEARCH_LIMIT" envDefault:"5"`
//		APIKey     string `env:"OPENAI_API_KEY,required"`
//	}
//
//	var cfg SearchConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning the error, which is convenient in
// main where a bad environment should stop the process.
package config
