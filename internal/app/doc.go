// Package app wires stores and services into the shared application context.
package app
