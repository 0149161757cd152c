// Package service implements the application's use cases on top of the
// store interfaces: authentication (registration, login), project CRUD, and
// task CRUD with ownership enforcement.
package service
