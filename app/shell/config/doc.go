// Package config provides the startup configuration of the catalog server:
// the seed data for authors and books and the OpenTelemetry provider setup.
package config
