// Package logger provides the slog setup shared by the indexing and
// query commands, plus attribute helpers for the domain's recurring
// fields (collections, record ids, build runs).
//
// Helpers follow the empty-Attr pattern: passing a nil error or empty id
// yields an attribute slog silently drops, so call sites never need nil
// checks:
//
//	log.Info("build finished", logger.Collection(name), logger.Error(err))
package logger
