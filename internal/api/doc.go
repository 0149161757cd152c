// Package api contains the HTTP handlers, request/response models, and
// error mapping that expose the service layer over REST.
package api
