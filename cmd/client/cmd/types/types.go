// Package types holds context keys shared between the command packages.
package types

type ContextKey string

const ClientAppKey ContextKey = "clientApp"
