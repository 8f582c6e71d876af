// Package services contains the vacancy board operations used by the CLI.
//
// Services are thin: they build the request, call the API through an
// api.Requester and unwrap the envelope. Errors from the API are returned
// wrapped, so api.MessageOr and errors.Is keep working on them.
package services
